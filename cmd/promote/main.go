// Command promote grants the moderator role to a user by screen name.
// It is used to bootstrap the first moderators.
//
// Usage:
//
//	promote -screen-name=alice
//
// Exit codes: 0 = success, 1 = error or no such user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/anonboard-backend/internal/config"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults to CONFIG_PATH or ./config.yaml)")
	screenName := flag.String("screen-name", "", "screen name of the user to promote to moderator")
	flag.Parse()

	if *screenName == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote -screen-name=alice")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(*configPath, *configPath != "")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		"UPDATE users SET role = $1, updated_at = now() WHERE screen_name = $2 AND role <> $1",
		domain.UserRoleModerator.String(), *screenName,
	)
	if err != nil {
		pool.Close()
		log.Fatalf("update role: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No user found with screen name %q, or already a moderator.\n", *screenName)
		pool.Close()
		os.Exit(1)
	}

	fmt.Printf("User %q promoted to moderator.\n", *screenName)
}
