// Package history implements the topic History repository using PostgreSQL.
package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	insertSQL = `
INSERT INTO histories (id, topic_id, user_id, title, tags, text, date, hash)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	findByTopicIDSQL = `
SELECT id, topic_id, user_id, title, tags, text, date, hash
FROM histories
WHERE topic_id = $1
ORDER BY date ASC, id ASC`
)

// Insert persists a topic snapshot.
func (r *Repo) Insert(ctx context.Context, h *domain.History) error {
	tags := h.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL,
		h.ID, h.TopicID, h.UserID, h.Title, tags, h.Text, h.Date, h.Hash,
	)
	return postgres.MapError(err, "history", h.ID)
}

// FindByTopicID returns a topic's snapshots oldest first.
func (r *Repo) FindByTopicID(ctx context.Context, topicID string) ([]domain.History, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, findByTopicIDSQL, topicID)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	defer rows.Close()

	out := []domain.History{}
	for rows.Next() {
		var h domain.History
		if err := rows.Scan(&h.ID, &h.TopicID, &h.UserID, &h.Title, &h.Tags, &h.Text, &h.Date, &h.Hash); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.Date = h.Date.UTC()
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	return out, nil
}
