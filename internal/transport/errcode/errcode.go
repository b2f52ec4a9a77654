// Package errcode maps domain errors to the stable codes clients see.
// REST handlers, middleware and the GraphQL presenter share this table.
package errcode

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Code is a client-facing error code.
type Code string

const (
	Validation      Code = "VALIDATION"
	SelfAction      Code = "SELF_ACTION"
	RateLimited     Code = "RATE_LIMITED"
	NotFound        Code = "NOT_FOUND"
	InvalidState    Code = "INVALID_STATE"
	Unauthenticated Code = "UNAUTHENTICATED"
	Forbidden       Code = "FORBIDDEN"
	Conflict        Code = "CONFLICT"
	AlreadyExists   Code = "ALREADY_EXISTS"
	BadRequest      Code = "BAD_REQUEST"
	Internal        Code = "INTERNAL"
)

var table = []struct {
	err    error
	code   Code
	status int
}{
	{domain.ErrValidation, Validation, http.StatusBadRequest},
	{domain.ErrSelfAction, SelfAction, http.StatusUnprocessableEntity},
	{domain.ErrRateLimited, RateLimited, http.StatusTooManyRequests},
	{domain.ErrNotFound, NotFound, http.StatusNotFound},
	{domain.ErrInvalidState, InvalidState, http.StatusConflict},
	{domain.ErrUnauthorized, Unauthenticated, http.StatusUnauthorized},
	{domain.ErrForbidden, Forbidden, http.StatusForbidden},
	{domain.ErrConflict, Conflict, http.StatusConflict},
	{domain.ErrAlreadyExists, AlreadyExists, http.StatusConflict},
}

// Of returns the code for err. Unknown errors are Internal.
func Of(err error) Code {
	for _, e := range table {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return Internal
}

// HTTPStatus returns the response status for c.
func (c Code) HTTPStatus() int {
	switch c {
	case BadRequest:
		return http.StatusBadRequest
	case Internal:
		return http.StatusInternalServerError
	}
	for _, e := range table {
		if e.code == c {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// Field is one invalid input field.
type Field struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Body is the JSON error envelope.
type Body struct {
	Code    Code    `json:"code"`
	Message string  `json:"message"`
	Fields  []Field `json:"fields,omitempty"`
}

// BodyOf builds the envelope for err. Internal errors never leak their text.
func BodyOf(err error) Body {
	code := Of(err)
	body := Body{Code: code, Message: err.Error()}

	switch code {
	case Internal:
		body.Message = "internal error"
	case Validation:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				body.Fields = append(body.Fields, Field{Field: fe.Field, Message: fe.Message})
			}
		}
	}
	return body
}

// RetryAfter returns the whole seconds to wait for a rate-limited err, rounded up.
func RetryAfter(err error) (int, bool) {
	var rl *domain.RateLimitError
	if !errors.As(err, &rl) {
		return 0, false
	}
	return int(math.Ceil(rl.RetryAfter.Seconds())), true
}

// Write renders err as a JSON error response and returns its code.
func Write(w http.ResponseWriter, err error) Code {
	body := BodyOf(err)
	if secs, ok := RetryAfter(err); ok {
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	WriteBody(w, body.Code.HTTPStatus(), body)
	return body.Code
}

// WriteBody renders an explicit envelope.
func WriteBody(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
