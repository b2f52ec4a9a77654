package res

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// CreateResInput holds the parameters for posting a normal res.
type CreateResInput struct {
	TopicID   string
	Name      *string
	Text      string
	ReplyTo   string
	ProfileID *string
	Age       bool
}

// Validate checks all fields and collects all errors.
func (i CreateResInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TopicID) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Name != nil && utf8.RuneCountInString(*i.Name) > domain.MaxResNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(i.Text) > domain.MaxResTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 5000 characters"})
	}
	if i.ProfileID != nil && strings.TrimSpace(*i.ProfileID) == "" {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VoteResInput holds the parameters for voting on a res.
type VoteResInput struct {
	ResID string
	Type  domain.VoteType
}

// Validate checks all fields and collects all errors.
func (i VoteResInput) Validate() error {
	var errs []domain.FieldError
	if i.ResID == "" {
		errs = append(errs, domain.FieldError{Field: "res_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be UP or DOWN"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListResInput pages the reses of a topic.
type ListResInput struct {
	TopicID string
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i ListResInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// emptyToNil drops a blank optional name so it is stored as absent.
func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
