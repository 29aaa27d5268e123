package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"compliance-backend"`
	LockTimeout     time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"5s"`
}

// AuthConfig holds settings for validating tokens issued by the identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"compliance"`
}

// RedisConfig holds the optional cache connection. An empty URL disables caching.
type RedisConfig struct {
	URL          string        `yaml:"url"            env:"REDIS_URL"`
	PoolSize     int           `yaml:"pool_size"      env:"REDIS_POOL_SIZE"      env-default:"10"`
	MinIdleConns int           `yaml:"min_idle_conns" env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
	DialTimeout  time.Duration `yaml:"dial_timeout"   env:"REDIS_DIAL_TIMEOUT"   env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"   env:"REDIS_READ_TIMEOUT"   env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout"  env:"REDIS_WRITE_TIMEOUT"  env-default:"3s"`
}

// KafkaConfig holds the suggestion feed consumer settings.
type KafkaConfig struct {
	Brokers         string `yaml:"brokers"          env:"KAFKA_BROKERS"`
	SuggestionTopic string `yaml:"suggestion_topic" env:"KAFKA_SUGGESTION_TOPIC" env-default:"evaluation.suggestions"`
	ConsumerGroup   string `yaml:"consumer_group"   env:"KAFKA_CONSUMER_GROUP"   env-default:"compliance-suggestion-ingest"`
	ClientID        string `yaml:"client_id"        env:"KAFKA_CLIENT_ID"        env-default:"compliance-backend"`

	// BrokerList is parsed from Brokers during validation.
	BrokerList []string `yaml:"-" env:"-"`
}

// EvaluationConfig holds limits of the evaluation core.
type EvaluationConfig struct {
	PageSize         int    `yaml:"page_size"          env:"EVAL_PAGE_SIZE"          env-default:"25"`
	ExportPageSize   int    `yaml:"export_page_size"   env:"EVAL_EXPORT_PAGE_SIZE"   env-default:"200"`
	ExportMaxPages   int    `yaml:"export_max_pages"   env:"EVAL_EXPORT_MAX_PAGES"   env-default:"50"`
	BulkMaxRecords   int    `yaml:"bulk_max_records"   env:"EVAL_BULK_MAX_RECORDS"   env-default:"1000"`
	BulkEditRolesRaw string `yaml:"bulk_edit_roles"    env:"EVAL_BULK_EDIT_ROLES"    env-default:"admin,manager"`

	// BulkEditRoles is parsed from BulkEditRolesRaw during validation.
	BulkEditRoles []string `yaml:"-" env:"-"`
}

// StorageConfig holds settings for time-limited proof access URLs.
type StorageConfig struct {
	ProofBaseURL  string        `yaml:"proof_base_url" env:"STORAGE_PROOF_BASE_URL" env-default:"http://localhost:8080/files"`
	SigningSecret string        `yaml:"signing_secret" env:"STORAGE_SIGNING_SECRET"`
	URLTTL        time.Duration `yaml:"url_ttl"        env:"STORAGE_URL_TTL"        env-default:"1h"`
	CacheTTL      time.Duration `yaml:"cache_ttl"      env:"STORAGE_CACHE_TTL"      env-default:"50m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CanBulkEdit reports whether the role holds the bulk-edit capability.
func (c EvaluationConfig) CanBulkEdit(role string) bool {
	return role != "" && slices.Contains(c.BulkEditRoles, role)
}

// Enabled reports whether a broker list is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.BrokerList) > 0
}
