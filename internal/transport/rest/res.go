package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/internal/service/res"
	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

type resService interface {
	CreateRes(ctx context.Context, input res.CreateResInput) (*domain.Res, error)
	VoteRes(ctx context.Context, input res.VoteResInput) (*domain.Res, error)
	DeleteRes(ctx context.Context, resID string) (*domain.Res, error)
	FreezeRes(ctx context.Context, resID string) (*domain.Res, error)
	GetRes(ctx context.Context, resID string) (*domain.Res, error)
	ListByTopic(ctx context.Context, input res.ListResInput) ([]domain.Res, error)
	ListReplies(ctx context.Context, resID string) ([]domain.Res, error)
	CountByTopic(ctx context.Context, topicID string) (int, error)
}

// ResHandler serves res endpoints.
type ResHandler struct {
	svc resService
	log *slog.Logger
}

// NewResHandler creates a ResHandler.
func NewResHandler(svc resService, logger *slog.Logger) *ResHandler {
	return &ResHandler{svc: svc, log: logger.With("handler", "res")}
}

type createResRequest struct {
	Name      *string `json:"name"`
	Text      string  `json:"text"`
	ReplyTo   string  `json:"replyTo"`
	ProfileID *string `json:"profileId"`
	Age       bool    `json:"age"`
}

type voteRequest struct {
	Type string `json:"type"`
}

type countResponse struct {
	Count int `json:"count"`
}

func viewer(r *http.Request) string {
	id, _ := ctxutil.UserIDFromCtx(r.Context())
	return id
}

// Create handles POST /v1/topics/{topicID}/res.
func (h *ResHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateRes(r.Context(), res.CreateResInput{
		TopicID:   chi.URLParam(r, "topicID"),
		Name:      req.Name,
		Text:      req.Text,
		ReplyTo:   req.ReplyTo,
		ProfileID: req.ProfileID,
		Age:       req.Age,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResResponse(created, viewer(r)))
}

// ListByTopic handles GET /v1/topics/{topicID}/res?limit=&offset=.
func (h *ResHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListByTopic(r.Context(), res.ListResInput{
		TopicID: chi.URLParam(r, "topicID"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResResponses(list, viewer(r)))
}

// CountByTopic handles GET /v1/topics/{topicID}/res/count.
func (h *ResHandler) CountByTopic(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountByTopic(r.Context(), chi.URLParam(r, "topicID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// Get handles GET /v1/res/{resID}.
func (h *ResHandler) Get(w http.ResponseWriter, r *http.Request) {
	got, err := h.svc.GetRes(r.Context(), chi.URLParam(r, "resID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResResponse(got, viewer(r)))
}

// Replies handles GET /v1/res/{resID}/replies.
func (h *ResHandler) Replies(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListReplies(r.Context(), chi.URLParam(r, "resID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResResponses(list, viewer(r)))
}

// Vote handles POST /v1/res/{resID}/votes.
func (h *ResHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	voted, err := h.svc.VoteRes(r.Context(), res.VoteResInput{
		ResID: chi.URLParam(r, "resID"),
		Type:  domain.VoteType(strings.ToUpper(req.Type)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResResponse(voted, viewer(r)))
}

// Delete handles DELETE /v1/res/{resID}: the author withdraws a res.
func (h *ResHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteRes(r.Context(), chi.URLParam(r, "resID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResResponse(deleted, viewer(r)))
}

// Freeze handles POST /v1/res/{resID}/freeze.
func (h *ResHandler) Freeze(w http.ResponseWriter, r *http.Request) {
	frozen, err := h.svc.FreezeRes(r.Context(), chi.URLParam(r, "resID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResResponse(frozen, viewer(r)))
}
