// Package graphql holds the GraphQL boundary pieces shared with the REST
// surface. No schema is served yet; the error presenter maps domain errors
// to the client-facing codes of package errcode.
package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/internal/transport/errcode"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to the same codes the REST surface uses, carried in extensions.code.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// gqlgen wraps resolver errors; a *gqlerror.Error from the parser
		// carries no domain error and keeps its own message.
		var parsed *gqlerror.Error
		if errors.As(err, &parsed) && parsed.Err == nil {
			return gqlErr
		}

		body := errcode.BodyOf(err)
		gqlErr.Extensions = map[string]any{"code": string(body.Code)}

		switch body.Code {
		case errcode.Internal:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = body.Message
		case errcode.Validation:
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}
		case errcode.RateLimited:
			if secs, ok := errcode.RetryAfter(err); ok {
				gqlErr.Extensions["retry_after"] = secs
			}
		}

		return gqlErr
	}
}
