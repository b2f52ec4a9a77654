package domain

// ResAdded is emitted after a res has been committed, for real-time fan-out.
// Count is the topic's ResCount including this res.
type ResAdded struct {
	Res   Res
	Count int
}

// NewResAdded copies res so later mutations of the aggregate do not leak into the fact.
func NewResAdded(res *Res, count int) ResAdded {
	cp := *res
	cp.Votes = append([]Vote(nil), res.Votes...)
	if res.Normal != nil {
		body := *res.Normal
		cp.Normal = &body
	}
	return ResAdded{Res: cp, Count: count}
}
