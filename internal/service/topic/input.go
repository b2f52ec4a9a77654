package topic

import (
	"errors"
	"strings"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// CreateTopicInput holds the parameters for opening a normal or one topic.
type CreateTopicInput struct {
	Title       string
	Description string
	Tags        []string
}

func (i CreateTopicInput) params() domain.TopicParams {
	return normalizeParams(i.Title, i.Description, i.Tags)
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	return collect(checkParams(i.params()))
}

// CreateForkInput holds the parameters for forking a normal topic.
type CreateForkInput struct {
	ParentID    string
	Title       string
	Description string
	Tags        []string
}

func (i CreateForkInput) params() domain.TopicParams {
	return normalizeParams(i.Title, i.Description, i.Tags)
}

// Validate checks all fields and collects all errors.
func (i CreateForkInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.ParentID) == "" {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	errs = append(errs, checkParams(i.params())...)
	return collect(errs)
}

// UpdateTopicInput replaces the editable fields of a normal topic.
type UpdateTopicInput struct {
	TopicID     string
	Title       string
	Description string
	Tags        []string
}

func (i UpdateTopicInput) params() domain.TopicParams {
	return normalizeParams(i.Title, i.Description, i.Tags)
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.TopicID) == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	errs = append(errs, checkParams(i.params())...)
	return collect(errs)
}

// ListTopicsInput filters and pages a topic listing.
type ListTopicsInput struct {
	Title      string
	Tags       []string
	ParentID   string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(i.Tags) > domain.MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}
	return collect(errs)
}

func (i ListTopicsInput) query() domain.TopicQuery {
	return domain.TopicQuery{
		Title:      strings.TrimSpace(i.Title),
		Tags:       trimTags(i.Tags),
		ParentID:   strings.TrimSpace(i.ParentID),
		ActiveOnly: i.ActiveOnly,
	}
}

func normalizeParams(title, description string, tags []string) domain.TopicParams {
	return domain.TopicParams{
		Title:       strings.TrimSpace(title),
		Description: description,
		Tags:        trimTags(tags),
	}
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.TrimSpace(t))
	}
	return out
}

// checkParams runs the domain content rules and unpacks their field error.
func checkParams(p domain.TopicParams) []domain.FieldError {
	err := domain.CheckTopicData(p.Title, p.Tags, p.Description)
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "input", Message: err.Error()}}
}

func collect(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
