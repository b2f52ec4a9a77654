package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/anonboard-backend/internal/adapter/snowflake"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var (
	idsOnce sync.Once
	ids     *snowflake.Generator
)

// NewID returns a fresh snowflake id for test rows.
func NewID(t *testing.T) string {
	t.Helper()
	idsOnce.Do(func() {
		g, err := snowflake.New(1023)
		if err != nil {
			panic(err)
		}
		ids = g
	})
	return ids.Generate()
}

// Now returns the current time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a plain user with a unique screen name.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := Now()
	id := NewID(t)
	user := domain.User{
		ID:                    id,
		ScreenName:            "user-" + id,
		PasswordHash:          "seed-hash",
		Role:                  domain.UserRoleUser,
		Lv:                    1,
		ResLastCreatedAt:      now,
		TopicLastCreatedAt:    now,
		OneTopicLastCreatedAt: now,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, screen_name, password_hash, role, lv, point,
		                    res_last_created_at, topic_last_created_at, one_topic_last_created_at,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $6, $6, $6, $6)`,
		user.ID, user.ScreenName, user.PasswordHash, string(user.Role), user.Lv, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTopic inserts an open NORMAL topic owned by userID.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID string) domain.Topic {
	t.Helper()

	now := Now()
	topic := domain.Topic{
		TopicBase: domain.TopicBase{
			ID:           NewID(t),
			Title:        "seed topic",
			Description:  "seed description",
			Type:         domain.TopicTypeNormal,
			UserID:       userID,
			Tags:         []string{"seed"},
			ResCount:     1,
			CreatedAt:    now,
			UpdatedAt:    now,
			LastResAt:    now,
			AgeUpdatedAt: now,
		},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, type, title, description, user_id, tags, res_count,
		                     created_at, updated_at, last_res_at, age_updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $8, $8)`,
		topic.ID, string(topic.Type), topic.Title, topic.Description, topic.UserID, topic.Tags, topic.ResCount, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedRes inserts an active NORMAL res in topicID.
func SeedRes(t *testing.T, pool *pgxpool.Pool, topicID, userID string) domain.Res {
	t.Helper()

	now := Now()
	res := domain.Res{
		ResBase: domain.ResBase{
			ID:      NewID(t),
			TopicID: topicID,
			UserID:  userID,
			Type:    domain.ResTypeNormal,
			Date:    now,
			Votes:   []domain.Vote{},
			Lv:      5,
			Hash:    domain.AnonymityHash(topicID, now, userID),
		},
		Normal: &domain.NormalBody{
			Text:       "seed res",
			DeleteFlag: domain.DeleteFlagActive,
		},
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reses (id, topic_id, user_id, type, date, lv, hash, text, delete_flag)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.ID, res.TopicID, res.UserID, string(res.Type), res.Date, res.Lv, res.Hash,
		res.Normal.Text, string(res.Normal.DeleteFlag),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRes: %v", err)
	}

	return res
}
