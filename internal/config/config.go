package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is read once at startup and passed explicitly; nothing mutates it.
type Config struct {
	Port     int
	LogLevel string

	CaktoWebhookSecret string
	HotmartHottok      string
	ServiceRoleKey     string

	AWS    AWSConfig
	Tables TableNames

	Functions FunctionsConfig

	LyricsMaxAttempts   int
	UnknownStatusPolicy string
	PhoneScanLimit      int

	Redis            RedisConfig
	DispatchGuardTTL time.Duration
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TableNames struct {
	Orders             string
	CaktoWebhookLogs   string
	HotmartWebhookLogs string
	Jobs               string
	LyricsApprovals    string
	EmailLogs          string
	Quizzes            string
}

type FunctionsConfig struct {
	BaseURL string
	Timeout time.Duration
	Mock    bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var defaults = map[string]any{
	"PORT":                          8080,
	"LOG_LEVEL":                     "info",
	"AWS_REGION":                    "us-east-1",
	"AWS_ACCESS_KEY_ID":             "local",
	"AWS_SECRET_ACCESS_KEY":         "local",
	"DYNAMODB_ORDERS_TABLE":         "orders",
	"DYNAMODB_CAKTO_LOGS_TABLE":     "cakto_webhook_logs",
	"DYNAMODB_HOTMART_LOGS_TABLE":   "hotmart_webhook_logs",
	"DYNAMODB_JOBS_TABLE":           "jobs",
	"DYNAMODB_APPROVALS_TABLE":      "lyrics_approvals",
	"DYNAMODB_EMAIL_LOGS_TABLE":     "email_logs",
	"DYNAMODB_QUIZZES_TABLE":        "quizzes",
	"FUNCTIONS_TIMEOUT":             "30s",
	"FUNCTIONS_MOCK":                false,
	"LYRICS_MAX_ATTEMPTS":           3,
	"WEBHOOK_UNKNOWN_STATUS_POLICY": "approve",
	"PHONE_SCAN_LIMIT":              200,
	"REDIS_DB":                      0,
	"DISPATCH_GUARD_TTL":            "5m",
}

// Load reads configuration from the environment (and .env, autoloaded by the
// entrypoint). Missing provider secrets are not an error here; the webhook
// endpoints fail closed for a provider without one.
func Load() (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:     v.GetInt("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),

		CaktoWebhookSecret: strings.TrimSpace(v.GetString("CAKTO_WEBHOOK_SECRET")),
		HotmartHottok:      strings.TrimSpace(v.GetString("HOTMART_HOTTOK")),
		ServiceRoleKey:     strings.TrimSpace(v.GetString("SERVICE_ROLE_KEY")),

		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TableNames{
			Orders:             v.GetString("DYNAMODB_ORDERS_TABLE"),
			CaktoWebhookLogs:   v.GetString("DYNAMODB_CAKTO_LOGS_TABLE"),
			HotmartWebhookLogs: v.GetString("DYNAMODB_HOTMART_LOGS_TABLE"),
			Jobs:               v.GetString("DYNAMODB_JOBS_TABLE"),
			LyricsApprovals:    v.GetString("DYNAMODB_APPROVALS_TABLE"),
			EmailLogs:          v.GetString("DYNAMODB_EMAIL_LOGS_TABLE"),
			Quizzes:            v.GetString("DYNAMODB_QUIZZES_TABLE"),
		},
		Functions: FunctionsConfig{
			BaseURL: strings.TrimRight(v.GetString("FUNCTIONS_BASE_URL"), "/"),
			Timeout: v.GetDuration("FUNCTIONS_TIMEOUT"),
			Mock:    v.GetBool("FUNCTIONS_MOCK"),
		},

		LyricsMaxAttempts:   v.GetInt("LYRICS_MAX_ATTEMPTS"),
		UnknownStatusPolicy: strings.ToLower(strings.TrimSpace(v.GetString("WEBHOOK_UNKNOWN_STATUS_POLICY"))),
		PhoneScanLimit:      v.GetInt("PHONE_SCAN_LIMIT"),

		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		DispatchGuardTTL: v.GetDuration("DISPATCH_GUARD_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.LyricsMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("LYRICS_MAX_ATTEMPTS must be >= 1, got %d", c.LyricsMaxAttempts))
	}
	if c.Functions.Timeout <= 0 {
		errs = append(errs, errors.New("FUNCTIONS_TIMEOUT must be positive"))
	}
	if !c.Functions.Mock && c.Functions.BaseURL == "" {
		errs = append(errs, errors.New("FUNCTIONS_BASE_URL is required unless FUNCTIONS_MOCK is enabled"))
	}
	switch c.UnknownStatusPolicy {
	case "approve", "ignore":
	default:
		errs = append(errs, fmt.Errorf("WEBHOOK_UNKNOWN_STATUS_POLICY must be approve or ignore, got %q", c.UnknownStatusPolicy))
	}
	return errors.Join(errs...)
}

// RedisEnabled reports whether the cross-instance dispatch guard is configured.
func (c Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

// ServiceRoleKey reads only the internal bearer credential, for tools that do
// not need the full service configuration.
func ServiceRoleKey() string {
	v := viper.New()
	v.AutomaticEnv()
	return strings.TrimSpace(v.GetString("SERVICE_ROLE_KEY"))
}
