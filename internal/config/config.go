package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           string   `envconfig:"PORT" default:"8080"`
	Environment    string   `envconfig:"ENV" default:"production"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`

	// Database settings
	DBConnectionString string `envconfig:"DATABASE_URL" required:"true"`
	DBMaxConns         int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	RunMigrations      bool   `envconfig:"RUN_MIGRATIONS" default:"false"`
	MigrationsDir      string `envconfig:"MIGRATIONS_DIR" default:"migrations"`

	// Auth settings. JWTSecretName takes precedence and is resolved through Secret Manager.
	JWTSecret            string `envconfig:"JWT_SECRET"`
	JWTSecretName        string `envconfig:"JWT_SECRET_NAME"`
	DashboardRequireAuth bool   `envconfig:"DASHBOARD_REQUIRE_AUTH" default:"true"`

	// GCP settings
	GCPProjectID       string `envconfig:"GCP_PROJECT_ID"`
	GCPCredentialsFile string `envconfig:"GCP_CREDENTIALS_FILE"`

	// Dashboard settings
	GrowthDefaultMonths    int    `envconfig:"GROWTH_DEFAULT_MONTHS" default:"7"`
	LocationsDefaultLimit  int    `envconfig:"LOCATIONS_DEFAULT_LIMIT" default:"5"`
	LocationsMaxLimit      int    `envconfig:"LOCATIONS_MAX_LIMIT" default:"20"`
	CategoryMatchMode      string `envconfig:"CATEGORY_MATCH_MODE" default:"exact"`
	PlaceholderMetricsFile string `envconfig:"PLACEHOLDER_METRICS_FILE"`

	// Snapshot storage settings
	S3URL       string `envconfig:"S3_URL"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:"dashboard-snapshots"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`

	// Snapshot orchestrator settings
	SnapshotQueueName      string `envconfig:"SNAPSHOT_QUEUE_NAME" default:"dashboard_snapshot_queue"`
	SnapshotPollTimeoutSec int    `envconfig:"SNAPSHOT_POLL_TIMEOUT_SEC" default:"30"`
	SnapshotPollMaxMsg     int    `envconfig:"SNAPSHOT_POLL_MAX_MSG" default:"1"`
	SnapshotTopic          string `envconfig:"SNAPSHOT_TOPIC" default:"dashboard-snapshots"`
	SnapshotURLExpiryMin   int    `envconfig:"SNAPSHOT_URL_EXPIRY_MIN" default:"15"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs against local infrastructure.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SnapshotsEnabled reports whether object storage is configured for snapshot export.
func (c *Config) SnapshotsEnabled() bool {
	return c.S3URL != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
