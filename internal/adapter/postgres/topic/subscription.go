package topic

import (
	"context"

	postgres "github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

const (
	enableSubscriptionSQL = `
INSERT INTO topic_subscriptions (topic_id, user_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (topic_id, user_id) DO NOTHING`

	disableSubscriptionSQL = `DELETE FROM topic_subscriptions WHERE topic_id = $1 AND user_id = $2`

	getSubscriptionSQL = `
SELECT topic_id, user_id, created_at
FROM topic_subscriptions
WHERE topic_id = $1 AND user_id = $2`

	subscriptionUserIDsSQL = `
SELECT user_id FROM topic_subscriptions WHERE topic_id = $1 ORDER BY created_at, user_id`
)

// EnableSubscription subscribes a user to a topic. Subscribing twice is a no-op.
func (r *Repo) EnableSubscription(ctx context.Context, s domain.Subscription) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, enableSubscriptionSQL, s.TopicID, s.UserID, s.CreatedAt)
	return postgres.MapError(err, "subscription", s.TopicID)
}

// DisableSubscription removes a subscription. Missing subscriptions are ignored.
func (r *Repo) DisableSubscription(ctx context.Context, topicID, userID string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, disableSubscriptionSQL, topicID, userID)
	return postgres.MapError(err, "subscription", topicID)
}

// GetSubscription returns domain.ErrNotFound when the user is not subscribed.
func (r *Repo) GetSubscription(ctx context.Context, topicID, userID string) (*domain.Subscription, error) {
	var s domain.Subscription
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, getSubscriptionSQL, topicID, userID).
		Scan(&s.TopicID, &s.UserID, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "subscription", topicID)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}

// SubscriptionUserIDs lists the subscribers of a topic in subscription order.
func (r *Repo) SubscriptionUserIDs(ctx context.Context, topicID string) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, subscriptionUserIDsSQL, topicID)
	if err != nil {
		return nil, postgres.MapError(err, "subscription", topicID)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "subscription", topicID)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "subscription", topicID)
	}
	return ids, nil
}
