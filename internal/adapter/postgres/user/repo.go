// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, screen_name, password_hash, role, lv, point,
       res_last_created_at, topic_last_created_at, one_topic_last_created_at,
       count_created_res_m10, count_created_res_m30, count_created_res_h1,
       count_created_res_h6, count_created_res_h12, count_created_res_d1,
       created_at, updated_at`

const (
	findByIDSQL          = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	findByIDForUpdateSQL = findByIDSQL + ` FOR UPDATE`
	findByScreenNameSQL  = `SELECT ` + userColumns + ` FROM users WHERE screen_name = $1`

	insertSQL = `
INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	saveSQL = `
UPDATE users
SET role = $2, lv = $3, point = $4,
    res_last_created_at = $5, topic_last_created_at = $6, one_topic_last_created_at = $7,
    count_created_res_m10 = $8, count_created_res_m30 = $9, count_created_res_h1 = $10,
    count_created_res_h6 = $11, count_created_res_h12 = $12, count_created_res_d1 = $13,
    updated_at = $14
WHERE id = $1`
)

// counterColumns maps a window to its column. Identifiers cannot be bound as
// parameters, so ResetCounter only interpolates values from this table.
var counterColumns = map[domain.CounterWindow]string{
	domain.CounterWindowM10: "count_created_res_m10",
	domain.CounterWindowM30: "count_created_res_m30",
	domain.CounterWindowH1:  "count_created_res_h1",
	domain.CounterWindowH6:  "count_created_res_h6",
	domain.CounterWindowH12: "count_created_res_h12",
	domain.CounterWindowD1:  "count_created_res_d1",
}

// FindOne returns a user by primary key.
func (r *Repo) FindOne(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, findByIDSQL, id)
}

// FindOneForUpdate returns a user and locks the row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) FindOneForUpdate(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, findByIDForUpdateSQL, id)
}

// FindByScreenName returns a user by screen name.
func (r *Repo) FindByScreenName(ctx context.Context, screenName string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, findByScreenNameSQL, screenName))
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	return u, nil
}

func (r *Repo) findOne(ctx context.Context, query, id string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Insert persists a new user. A taken screen name yields domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, u *domain.User) error {
	c := u.CountCreatedRes
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL,
		u.ID, u.ScreenName, u.PasswordHash, string(u.Role), u.Lv, u.Point,
		u.ResLastCreatedAt, u.TopicLastCreatedAt, u.OneTopicLastCreatedAt,
		c.M10, c.M30, c.H1, c.H6, c.H12, c.D1,
		u.CreatedAt, u.UpdatedAt,
	)
	return postgres.MapError(err, "user", u.ID)
}

// Save writes back every mutable field of u.
func (r *Repo) Save(ctx context.Context, u *domain.User) error {
	c := u.CountCreatedRes
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, saveSQL,
		u.ID, string(u.Role), u.Lv, u.Point,
		u.ResLastCreatedAt, u.TopicLastCreatedAt, u.OneTopicLastCreatedAt,
		c.M10, c.M30, c.H1, c.H6, c.H12, c.D1,
		u.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", u.ID)
	}
	return nil
}

// ResetCounter zeroes one rolling res counter for every user and returns the
// number of rows changed.
func (r *Repo) ResetCounter(ctx context.Context, window domain.CounterWindow) (int64, error) {
	col, ok := counterColumns[window]
	if !ok {
		return 0, domain.NewValidationError("window", fmt.Sprintf("unknown counter window %q", window))
	}

	query := fmt.Sprintf(`UPDATE users SET %[1]s = 0 WHERE %[1]s <> 0`, col)
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query)
	if err != nil {
		return 0, postgres.MapError(err, "users", "")
	}
	return tag.RowsAffected(), nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
		c    = &u.CountCreatedRes
	)
	err := row.Scan(
		&u.ID, &u.ScreenName, &u.PasswordHash, &role, &u.Lv, &u.Point,
		&u.ResLastCreatedAt, &u.TopicLastCreatedAt, &u.OneTopicLastCreatedAt,
		&c.M10, &c.M30, &c.H1, &c.H6, &c.H12, &c.D1,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	u.ResLastCreatedAt = u.ResLastCreatedAt.UTC()
	u.TopicLastCreatedAt = u.TopicLastCreatedAt.UTC()
	u.OneTopicLastCreatedAt = u.OneTopicLastCreatedAt.UTC()
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}
