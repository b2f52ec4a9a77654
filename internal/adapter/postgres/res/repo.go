// Package res implements the Res repository using PostgreSQL.
// Votes live in res_votes and are loaded alongside every res.
package res

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Repo provides res and vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	psql sq.StatementBuilderType
}

// New creates a new res repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const resColumns = `r.id, r.topic_id, r.user_id, r.type, r.date, r.lv, r.hash,
       r.name, r.text, r.reply_res_id, r.reply_user_id, r.delete_flag, r.profile_id, r.age,
       r.history_id, r.fork_id,
       (SELECT count(*) FROM reses c WHERE c.reply_res_id = r.id) AS reply_count`

const (
	findByIDSQL          = `SELECT ` + resColumns + ` FROM reses r WHERE r.id = $1`
	findByIDForUpdateSQL = findByIDSQL + ` FOR UPDATE OF r`

	insertSQL = `
INSERT INTO reses (id, topic_id, user_id, type, date, lv, hash,
                   name, text, reply_res_id, reply_user_id, delete_flag, profile_id, age,
                   history_id, fork_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	updateSQL = `UPDATE reses SET delete_flag = $2 WHERE id = $1`

	upsertVoteSQL = `
INSERT INTO res_votes (res_id, user_id, value)
VALUES ($1, $2, $3)
ON CONFLICT (res_id, user_id) DO UPDATE SET value = EXCLUDED.value
WHERE res_votes.value <> EXCLUDED.value`

	votesByResIDsSQL = `
SELECT res_id, user_id, value FROM res_votes
WHERE res_id = ANY($1::text[])
ORDER BY res_id, user_id`

	countByTopicIDSQL = `SELECT count(*) FROM reses WHERE topic_id = $1`
)

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// FindOne returns a res with its votes.
func (r *Repo) FindOne(ctx context.Context, id string) (*domain.Res, error) {
	return r.findOne(ctx, findByIDSQL, id)
}

// FindOneForUpdate returns a res and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) FindOneForUpdate(ctx context.Context, id string) (*domain.Res, error) {
	return r.findOne(ctx, findByIDForUpdateSQL, id)
}

func (r *Repo) findOne(ctx context.Context, query, id string) (*domain.Res, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	res, err := scanRes(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "res", id)
	}

	if err := r.attachVotes(ctx, q, []*domain.Res{res}); err != nil {
		return nil, err
	}
	return res, nil
}

// FindByTopicID lists a topic's reses oldest first.
func (r *Repo) FindByTopicID(ctx context.Context, topicID string, limit, offset int) ([]domain.Res, error) {
	b := r.psql.Select(resColumns).
		From("reses r").
		Where(sq.Eq{"r.topic_id": topicID}).
		OrderBy("r.date ASC", "r.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return r.list(ctx, b, "topic "+topicID)
}

// FindByReplyID lists the reses that reply to resID, oldest first.
func (r *Repo) FindByReplyID(ctx context.Context, resID string) ([]domain.Res, error) {
	b := r.psql.Select(resColumns).
		From("reses r").
		Where(sq.Eq{"r.reply_res_id": resID}).
		OrderBy("r.date ASC", "r.id ASC")
	return r.list(ctx, b, "replies "+resID)
}

// CountByTopicID counts every res in a topic, markers included.
func (r *Repo) CountByTopicID(ctx context.Context, topicID string) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByTopicIDSQL, topicID).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "topic", topicID)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder, what string) ([]domain.Res, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build res query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "reses", "")
	}

	var ptrs []*domain.Res
	for rows.Next() {
		res, err := scanRes(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan res for %s: %w", what, err)
		}
		ptrs = append(ptrs, res)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "reses", "")
	}

	if err := r.attachVotes(ctx, q, ptrs); err != nil {
		return nil, err
	}

	out := make([]domain.Res, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out, nil
}

// attachVotes loads the vote ledgers for reses in one query.
func (r *Repo) attachVotes(ctx context.Context, q postgres.Querier, reses []*domain.Res) error {
	if len(reses) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Res, len(reses))
	ids := make([]string, len(reses))
	for i, res := range reses {
		res.Votes = []domain.Vote{}
		byID[res.ID] = res
		ids[i] = res.ID
	}

	rows, err := q.Query(ctx, votesByResIDsSQL, ids)
	if err != nil {
		return postgres.MapError(err, "votes", "")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resID string
			v     domain.Vote
		)
		if err := rows.Scan(&resID, &v.UserID, &v.Value); err != nil {
			return fmt.Errorf("scan vote: %w", err)
		}
		if res, ok := byID[resID]; ok {
			res.Votes = append(res.Votes, v)
		}
	}
	return postgres.MapError(rows.Err(), "votes", "")
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert persists a new res of any variant together with its votes.
func (r *Repo) Insert(ctx context.Context, res *domain.Res) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		name, profileID, replyResID, replyUserID, deleteFlag, text *string
		age                                                        bool
	)
	if n := res.Normal; n != nil {
		name = n.Name
		profileID = n.ProfileID
		text = &n.Text
		flag := string(n.DeleteFlag)
		deleteFlag = &flag
		age = n.Age
		if n.Reply != nil {
			replyResID = &n.Reply.ResID
			replyUserID = &n.Reply.UserID
		}
	}

	_, err := q.Exec(ctx, insertSQL,
		res.ID, res.TopicID, res.UserID, string(res.Type), res.Date, res.Lv, res.Hash,
		name, text, replyResID, replyUserID, deleteFlag, profileID, age,
		nullString(res.HistoryID), nullString(res.ForkID),
	)
	if err != nil {
		return postgres.MapError(err, "res", res.ID)
	}

	return r.saveVotes(ctx, q, res)
}

// Update writes back the delete flag and upserts the vote ledger.
// Votes are never removed, so the ledger only grows or flips.
func (r *Repo) Update(ctx context.Context, res *domain.Res) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if res.Normal != nil {
		tag, err := q.Exec(ctx, updateSQL, res.ID, string(res.Normal.DeleteFlag))
		if err != nil {
			return postgres.MapError(err, "res", res.ID)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(pgx.ErrNoRows, "res", res.ID)
		}
	}

	return r.saveVotes(ctx, q, res)
}

func (r *Repo) saveVotes(ctx context.Context, q postgres.Querier, res *domain.Res) error {
	if len(res.Votes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, v := range res.Votes {
		batch.Queue(upsertVoteSQL, res.ID, v.UserID, v.Value)
	}

	br := q.SendBatch(ctx, batch)
	for range res.Votes {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "res vote", res.ID)
		}
	}
	return postgres.MapError(br.Close(), "res vote", res.ID)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanRes(row pgx.Row) (*domain.Res, error) {
	var (
		res                                 domain.Res
		typ                                 string
		name, text, replyResID, replyUserID *string
		deleteFlag, profileID               *string
		historyID, forkID                   *string
		age                                 bool
	)
	err := row.Scan(
		&res.ID, &res.TopicID, &res.UserID, &typ, &res.Date, &res.Lv, &res.Hash,
		&name, &text, &replyResID, &replyUserID, &deleteFlag, &profileID, &age,
		&historyID, &forkID,
		&res.ReplyCount,
	)
	if err != nil {
		return nil, err
	}

	res.Type = domain.ResType(typ)
	res.Date = res.Date.UTC()
	res.Votes = []domain.Vote{}

	switch res.Type {
	case domain.ResTypeNormal:
		body := &domain.NormalBody{
			Name:      name,
			ProfileID: profileID,
			Age:       age,
		}
		if text != nil {
			body.Text = *text
		}
		if deleteFlag != nil {
			body.DeleteFlag = domain.DeleteFlag(*deleteFlag)
		}
		if replyResID != nil && replyUserID != nil {
			body.Reply = &domain.Reply{ResID: *replyResID, UserID: *replyUserID}
		}
		res.Normal = body
	case domain.ResTypeHistory:
		if historyID != nil {
			res.HistoryID = *historyID
		}
	case domain.ResTypeFork:
		if forkID != nil {
			res.ForkID = *forkID
		}
	}

	return &res, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
