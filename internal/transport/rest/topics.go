package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/internal/service/topic"
)

type topicService interface {
	CreateTopicNormal(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	CreateTopicOne(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	CreateTopicFork(ctx context.Context, input topic.CreateForkInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID string) (*domain.Topic, error)
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]domain.Topic, error)
	ListHistories(ctx context.Context, topicID string) ([]domain.History, error)
	Subscribe(ctx context.Context, topicID string) error
	Unsubscribe(ctx context.Context, topicID string) error
	IsSubscribed(ctx context.Context, topicID string) (bool, error)
}

// TopicHandler serves topic endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topics")}
}

type createTopicRequest struct {
	Type        string   `json:"type"`
	ParentID    string   `json:"parentId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type updateTopicRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type subscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}

// Create handles POST /v1/topics. Type defaults to NORMAL.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var (
		t   *domain.Topic
		err error
	)
	switch typ := domain.TopicType(strings.ToUpper(req.Type)); typ {
	case "", domain.TopicTypeNormal:
		t, err = h.svc.CreateTopicNormal(r.Context(), topic.CreateTopicInput{
			Title: req.Title, Description: req.Description, Tags: req.Tags,
		})
	case domain.TopicTypeOne:
		t, err = h.svc.CreateTopicOne(r.Context(), topic.CreateTopicInput{
			Title: req.Title, Description: req.Description, Tags: req.Tags,
		})
	case domain.TopicTypeFork:
		t, err = h.svc.CreateTopicFork(r.Context(), topic.CreateForkInput{
			ParentID: req.ParentID, Title: req.Title, Description: req.Description, Tags: req.Tags,
		})
	default:
		err = domain.NewValidationError("type", "must be NORMAL, ONE or FORK")
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// List handles GET /v1/topics?title=&tags=a,b&parentId=&active=&limit=&offset=.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := topic.ListTopicsInput{
		Title:    q.Get("title"),
		ParentID: q.Get("parentId"),
	}
	if tags := q.Get("tags"); tags != "" {
		input.Tags = strings.Split(tags, ",")
	}

	var err error
	if input.ActiveOnly, err = queryBool(r, "active"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	topics, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponses(topics))
}

// Get handles GET /v1/topics/{topicID}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTopic(r.Context(), chi.URLParam(r, "topicID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Update handles PUT /v1/topics/{topicID}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.UpdateTopic(r.Context(), topic.UpdateTopicInput{
		TopicID:     chi.URLParam(r, "topicID"),
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Histories handles GET /v1/topics/{topicID}/histories.
func (h *TopicHandler) Histories(w http.ResponseWriter, r *http.Request) {
	hs, err := h.svc.ListHistories(r.Context(), chi.URLParam(r, "topicID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(hs))
}

// Subscription handles GET /v1/topics/{topicID}/subscription.
func (h *TopicHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.IsSubscribed(r.Context(), chi.URLParam(r, "topicID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionResponse{Subscribed: ok})
}

// Subscribe handles PUT /v1/topics/{topicID}/subscription.
func (h *TopicHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Subscribe(r.Context(), chi.URLParam(r, "topicID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionResponse{Subscribed: true})
}

// Unsubscribe handles DELETE /v1/topics/{topicID}/subscription.
func (h *TopicHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Unsubscribe(r.Context(), chi.URLParam(r, "topicID")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionResponse{Subscribed: false})
}
