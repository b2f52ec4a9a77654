package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/anonboard-backend/internal/config"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/internal/transport/errcode"
)

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type testServer struct {
	handler http.Handler
	logs    *bytes.Buffer
	users   *userServiceMock
	topics  *topicServiceMock
	res     *resServiceMock
	source  *resAddedSourceMock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	ts := &testServer{
		logs:   logs,
		users:  &userServiceMock{},
		topics: &topicServiceMock{},
		res:    &resServiceMock{},
		source: &resAddedSourceMock{},
	}

	tokens := &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (string, domain.UserRole, error) {
			switch token {
			case "user-token":
				return "u1", domain.UserRoleUser, nil
			case "mod-token":
				return "m1", domain.UserRoleModerator, nil
			}
			return "", "", errors.New("invalid token")
		},
	}

	ts.handler = NewRouter(RouterDeps{
		Logger:   logger,
		Users:    NewUserHandler(ts.users, logger),
		Topics:   NewTopicHandler(ts.topics, logger),
		Res:      NewResHandler(ts.res, logger),
		Events:   NewEventHandler(ts.source, logger, time.Hour),
		Health:   NewHealthHandler(map[string]Checker{}, "test"),
		Tokens:   tokens,
		Observer: &httpObserverMock{ObserveHTTPFunc: func(string, int, time.Duration) {}},
		CORS:     config.CORSConfig{AllowedOrigins: "*"},
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "metrics") //nolint:errcheck
		}),
		MetricsPath: "/metrics",
	})
	return ts
}

// do sends a request with an optional JSON body and bearer token.
func (ts *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) errcode.Body {
	t.Helper()
	return decodeBody[errcode.Body](t, rec)
}

func sampleTopic(id string, typ domain.TopicType) *domain.Topic {
	return &domain.Topic{TopicBase: domain.TopicBase{
		ID:        id,
		Title:     "title " + id,
		Type:      typ,
		UserID:    "author",
		Tags:      []string{"go"},
		ResCount:  1,
		CreatedAt: t0,
		UpdatedAt: t0,
		LastResAt: t0,
	}}
}

func sampleRes(id, userID string, flag domain.DeleteFlag) *domain.Res {
	name := "anon"
	return &domain.Res{
		ResBase: domain.ResBase{
			ID:      id,
			TopicID: "t1",
			UserID:  userID,
			Type:    domain.ResTypeNormal,
			Date:    t0,
			Hash:    "hash-" + id,
			Lv:      5,
			Votes:   []domain.Vote{{UserID: "u1", Value: 2}, {UserID: "u2", Value: -1}},
		},
		Normal: &domain.NormalBody{
			Name:       &name,
			Text:       "hello",
			Reply:      &domain.Reply{ResID: "r0", UserID: "u9"},
			DeleteFlag: flag,
		},
	}
}
