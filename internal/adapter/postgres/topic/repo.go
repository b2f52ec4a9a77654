// Package topic implements the Topic repository using PostgreSQL.
// Fixed queries are raw SQL; the search query is assembled with squirrel.
package topic

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Repo provides topic and subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	psql sq.StatementBuilderType
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const topicColumns = `id, type, title, description, user_id, parent_id, tags, res_count,
       is_closed, created_at, updated_at, last_res_at, age_updated_at`

const (
	findByIDSQL          = `SELECT ` + topicColumns + ` FROM topics WHERE id = $1`
	findByIDForUpdateSQL = findByIDSQL + ` FOR UPDATE`

	insertSQL = `
INSERT INTO topics (` + topicColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	updateSQL = `
UPDATE topics
SET title = $2, description = $3, tags = $4, res_count = $5, is_closed = $6,
    updated_at = $7, last_res_at = $8, age_updated_at = $9
WHERE id = $1`

	closeIdleSQL = `
UPDATE topics
SET is_closed = true, updated_at = $3
WHERE type = $1 AND NOT is_closed AND updated_at < $2`
)

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// FindOne returns a topic by primary key.
func (r *Repo) FindOne(ctx context.Context, id string) (*domain.Topic, error) {
	return r.findOne(ctx, findByIDSQL, id)
}

// FindOneForUpdate returns a topic and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) FindOneForUpdate(ctx context.Context, id string) (*domain.Topic, error) {
	return r.findOne(ctx, findByIDForUpdateSQL, id)
}

func (r *Repo) findOne(ctx context.Context, query, id string) (*domain.Topic, error) {
	t, err := scanTopic(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// Find searches topics, most recently bumped first.
// Title matches case-insensitively as a substring; Tags must all be present.
func (r *Repo) Find(ctx context.Context, q domain.TopicQuery, limit, offset int) ([]domain.Topic, error) {
	b := r.psql.Select(topicColumns).From("topics")

	if q.Title != "" {
		b = b.Where(sq.ILike{"title": "%" + escapeLike(q.Title) + "%"})
	}
	if len(q.Tags) > 0 {
		b = b.Where("tags @> ?", q.Tags)
	}
	if q.ParentID != "" {
		b = b.Where(sq.Eq{"parent_id": q.ParentID})
	}
	if q.ActiveOnly {
		b = b.Where(sq.Eq{"is_closed": false})
	}

	b = b.OrderBy("age_updated_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic search: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topics", "")
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0, limit)
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "topics", "")
	}

	return topics, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert persists a new topic of any variant.
func (r *Repo) Insert(ctx context.Context, t *domain.Topic) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL,
		t.ID, string(t.Type), t.Title, t.Description, t.UserID, nullString(t.ParentID),
		tagsOrEmpty(t.Tags), t.ResCount, t.IsClosed,
		t.CreatedAt, t.UpdatedAt, t.LastResAt, t.AgeUpdatedAt,
	)
	return postgres.MapError(err, "topic", t.ID)
}

// Update writes back the mutable fields of t. Type, owner and parent never change.
func (r *Repo) Update(ctx context.Context, t *domain.Topic) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateSQL,
		t.ID, t.Title, t.Description, tagsOrEmpty(t.Tags), t.ResCount, t.IsClosed,
		t.UpdatedAt, t.LastResAt, t.AgeUpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "topic", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "topic", t.ID)
	}
	return nil
}

// CloseIdle closes every open topic of type typ whose last update is older
// than before, stamping now as the update time. Returns the number closed.
func (r *Repo) CloseIdle(ctx context.Context, typ domain.TopicType, before, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, closeIdleSQL, string(typ), before, now)
	if err != nil {
		return 0, postgres.MapError(err, "topics", "")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t        domain.Topic
		typ      string
		parentID *string
	)
	err := row.Scan(
		&t.ID, &typ, &t.Title, &t.Description, &t.UserID, &parentID, &t.Tags, &t.ResCount,
		&t.IsClosed, &t.CreatedAt, &t.UpdatedAt, &t.LastResAt, &t.AgeUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Type = domain.TopicType(typ)
	if parentID != nil {
		t.ParentID = *parentID
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	t.LastResAt = t.LastResAt.UTC()
	t.AgeUpdatedAt = t.AgeUpdatedAt.UTC()
	return &t, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
