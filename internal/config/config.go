package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Board     BoardConfig     `yaml:"board"`
	Snowflake SnowflakeConfig `yaml:"snowflake"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// RedisConfig holds the Redis connection used for res fan-out.
type RedisConfig struct {
	URL             string        `yaml:"url"               env:"REDIS_URL"               env-required:"true"`
	PoolSize        int           `yaml:"pool_size"         env:"REDIS_POOL_SIZE"         env-default:"10"`
	MinIdleConns    int           `yaml:"min_idle_conns"    env:"REDIS_MIN_IDLE_CONNS"    env-default:"2"`
	DialTimeout     time.Duration `yaml:"dial_timeout"      env:"REDIS_DIAL_TIMEOUT"      env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"REDIS_READ_TIMEOUT"      env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"REDIS_WRITE_TIMEOUT"     env-default:"3s"`
	ResAddedChannel string        `yaml:"res_added_channel" env:"REDIS_RES_ADDED_CHANNEL" env-default:"res/add"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"anonboard"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// BoardConfig holds the posting rules that are tunable per deployment.
type BoardConfig struct {
	ResCooldown      time.Duration `yaml:"res_cooldown"        env:"BOARD_RES_COOLDOWN"        env-default:"1h"`
	TopicCooldown    time.Duration `yaml:"topic_cooldown"      env:"BOARD_TOPIC_COOLDOWN"      env-default:"1h"`
	OneTopicCooldown time.Duration `yaml:"one_topic_cooldown"  env:"BOARD_ONE_TOPIC_COOLDOWN"  env-default:"1h"`
	OneTopicIdleTTL  time.Duration `yaml:"one_topic_idle_ttl"  env:"BOARD_ONE_TOPIC_IDLE_TTL"  env-default:"168h"`
	DefaultPageSize  int           `yaml:"default_page_size"   env:"BOARD_DEFAULT_PAGE_SIZE"   env-default:"50"`
	MaxPageSize      int           `yaml:"max_page_size"       env:"BOARD_MAX_PAGE_SIZE"       env-default:"100"`
}

// SnowflakeConfig identifies this process in generated ids.
type SnowflakeConfig struct {
	NodeID int64 `yaml:"node_id" env:"SNOWFLAKE_NODE_ID" env-default:"1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-client HTTP throttle, separate from the posting cooldowns.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// MetricsConfig controls the Prometheus endpoint.
// Off unless enabled explicitly; cleanenv cannot tell a YAML false from unset.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RateLimitPolicy converts the board cooldowns into the domain policy.
func (b BoardConfig) RateLimitPolicy() domain.RateLimitPolicy {
	return domain.RateLimitPolicy{
		ResCooldown:      b.ResCooldown,
		TopicCooldown:    b.TopicCooldown,
		OneTopicCooldown: b.OneTopicCooldown,
	}
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
