package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	// bwmarrin/snowflake reserves 10 bits for the node.
	if c.Snowflake.NodeID < 0 || c.Snowflake.NodeID > 1023 {
		return fmt.Errorf("snowflake.node_id must be in [0, 1023] (got %d)", c.Snowflake.NodeID)
	}

	if !strings.HasPrefix(c.Redis.URL, "redis://") && !strings.HasPrefix(c.Redis.URL, "rediss://") {
		return fmt.Errorf("redis.url must start with redis:// or rediss://")
	}
	if c.Redis.ResAddedChannel == "" {
		return fmt.Errorf("redis.res_added_channel is required")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (b *BoardConfig) validate() error {
	if b.ResCooldown < 0 || b.TopicCooldown < 0 || b.OneTopicCooldown < 0 {
		return fmt.Errorf("cooldowns must be >= 0")
	}
	if b.OneTopicIdleTTL <= 0 {
		return fmt.Errorf("one_topic_idle_ttl must be > 0 (got %v)", b.OneTopicIdleTTL)
	}
	if b.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", b.DefaultPageSize)
	}
	if b.MaxPageSize < b.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", b.MaxPageSize, b.DefaultPageSize)
	}
	return nil
}
