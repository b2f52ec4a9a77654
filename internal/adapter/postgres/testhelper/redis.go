package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce    sync.Once
	sharedRedis  string
	redisInitErr error
)

// SetupTestRedis starts a shared Redis container once per test run and
// returns its redis:// URL.
func SetupTestRedis(t *testing.T) string {
	t.Helper()

	redisOnce.Do(func() {
		sharedRedis, redisInitErr = startRedis()
	})
	if redisInitErr != nil {
		t.Fatalf("testhelper: failed to setup test redis: %v", redisInitErr)
	}
	return sharedRedis
}

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := tcredis.Run(ctx, "redis:7-alpine",
		testcontainers.WithWaitStrategy(wait.ForLog("Ready to accept connections")),
	)
	if err != nil {
		return "", fmt.Errorf("start redis container: %w", err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(context.Background())
		return "", fmt.Errorf("redis connection string: %w", err)
	}
	return url, nil
}
