package domain

import "fmt"

// Vote is one voter's entry in a res ledger.
type Vote struct {
	UserID string
	Value  int
}

// Vote applies voterID's vote to the ledger.
//
// A voter has at most one entry. Voting in the opposite direction overwrites
// it; voting again in the same direction changes nothing.
func (r *Res) Vote(voterID string, vt VoteType) error {
	if !vt.IsValid() {
		return NewValidationError("type", "must be UP or DOWN")
	}
	if voterID == r.UserID {
		return fmt.Errorf("vote on res %s: %w", r.ID, ErrSelfAction)
	}
	if !r.IsActive() {
		return fmt.Errorf("vote on res %s: %w", r.ID, ErrInvalidState)
	}

	value := vt.Value()
	for i := range r.Votes {
		if r.Votes[i].UserID != voterID {
			continue
		}
		existing := r.Votes[i].Value
		if (existing > 0 && value < 0) || (existing < 0 && value > 0) {
			r.Votes[i].Value = value
		}
		return nil
	}

	r.Votes = append(r.Votes, Vote{UserID: voterID, Value: value})
	return nil
}

// VoteOf returns voterID's current vote value, or 0.
func (r *Res) VoteOf(voterID string) int {
	for _, v := range r.Votes {
		if v.UserID == voterID {
			return v.Value
		}
	}
	return 0
}

// Score sums the ledger.
func (r *Res) Score() int {
	total := 0
	for _, v := range r.Votes {
		total += v.Value
	}
	return total
}
