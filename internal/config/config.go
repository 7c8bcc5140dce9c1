package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// DriverSQLite stores attempts in a local SQLite file.
	DriverSQLite = "sqlite"
	// DriverPostgres stores attempts in PostgreSQL.
	DriverPostgres = "postgres"
)

type Config struct {
	Environment   string
	LogLevel      string
	Server        ServerConfig
	Upstream      UpstreamConfig
	Database      DatabaseConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port int `validate:"gt=0,lte=65535"`
}

// UpstreamConfig describes the disruption endpoint and its credential.
type UpstreamConfig struct {
	BaseURL string        `validate:"required,url"`
	AppKey  string        `validate:"omitempty"`
	Timeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver    string `validate:"oneof=sqlite postgres"`
	Path      string `validate:"required_if=Driver sqlite"`
	LogTiming bool
	User      string `validate:"required_if=Driver postgres"`
	Password  string
	Host      string `validate:"required_if=Driver postgres"`
	Port      int    `validate:"gte=0,lte=65535"`
	Name      string `validate:"required_if=Driver postgres"`
	Schema    string
	SSLMode   string `validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string  `validate:"required"`
	ServiceVer        string  `validate:"required"`
	SamplingRatio     float64 `validate:"gte=0,lte=1"`
	MetricsConsole    bool
}

// Load reads ingestion config and requires an upstream credential outside local/dev.
func Load() (Config, error) {
	return load(true)
}

// LoadForServer loads config for the read API, which never calls the upstream API.
func LoadForServer() (Config, error) {
	return load(false)
}

func load(requireAppKey bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("tflwatch_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("tflwatch_log_level", "info")
	v.SetDefault("tflwatch_port", 8080)
	v.SetDefault("tfl_app_key", "")
	v.SetDefault("app_key", "")
	v.SetDefault("tfl_api_base_url", "https://api.tfl.gov.uk")
	v.SetDefault("tfl_fetch_timeout", "5s")
	v.SetDefault("tflwatch_db_driver", DriverSQLite)
	v.SetDefault("tflwatch_db_path", "data/tflwatch")
	v.SetDefault("tflwatch_db_timing", false)
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_sslmode", "")
	v.SetDefault("tflwatch_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "")
	v.SetDefault("tflwatch_service_name", "tflwatch")
	v.SetDefault("tflwatch_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("tflwatch_otel_sampling_ratio", 1.0)
	v.SetDefault("tflwatch_otel_metrics_console", false)

	// Lower-case names used by earlier deployments of the ingestion script.
	for _, key := range []string{"app_key", "db_user", "db_password", "db_account", "db", "schema"} {
		_ = v.BindEnv(key, strings.ToUpper(key), key)
	}
	for _, key := range []string{"db_host", "db_schema"} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	env := resolveEnvironment(v)

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("tfl_fetch_timeout")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TFL_FETCH_TIMEOUT: %w", err)
	}

	samplingRatio := v.GetFloat64("tflwatch_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = strings.TrimSpace(v.GetString("tflwatch_service_name"))
	}
	if serviceName == "" {
		serviceName = "tflwatch"
	}

	serviceVersion := strings.TrimSpace(v.GetString("tflwatch_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	otlpTraceHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))
	otlpMetricHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))
	metricsConsole := v.GetBool("tflwatch_otel_metrics_console")
	otelEnabled := v.GetBool("tflwatch_otel_enabled") || otlpEndpoint != "" || metricsConsole

	cfg := Config{
		Environment: env,
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("tflwatch_log_level"))),
		Server:      ServerConfig{Port: v.GetInt("tflwatch_port")},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("tfl_api_base_url")), "/"),
			AppKey:  firstNonEmpty(v.GetString("tfl_app_key"), v.GetString("app_key")),
			Timeout: timeout,
		},
		Database: DatabaseConfig{
			Driver:    strings.ToLower(strings.TrimSpace(v.GetString("tflwatch_db_driver"))),
			Path:      strings.TrimSpace(v.GetString("tflwatch_db_path")),
			LogTiming: v.GetBool("tflwatch_db_timing"),
			User:      strings.TrimSpace(v.GetString("db_user")),
			Password:  v.GetString("db_password"),
			Host:      firstNonEmpty(v.GetString("db_host"), v.GetString("db_account")),
			Port:      v.GetInt("db_port"),
			Name:      strings.TrimSpace(v.GetString("db")),
			Schema:    strings.TrimSpace(v.GetString("db_schema")),
			SSLMode:   strings.TrimSpace(v.GetString("db_sslmode")),
		},
		Observability: ObservabilityConfig{
			Enabled:           otelEnabled,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, otlpTraceHeaders),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, otlpMetricHeaders),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
	}
	if cfg.Database.Schema == "" {
		cfg.Database.Schema = strings.TrimSpace(v.GetString("schema"))
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/tflwatch"
	}
	if cfg.Database.Driver == DriverPostgres && cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "require"
		if cfg.IsLocalDevelopment() {
			cfg.Database.SSLMode = "disable"
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if requireAppKey && !cfg.IsLocalDevelopment() && cfg.Upstream.AppKey == "" {
		return Config{}, fmt.Errorf("TFL_APP_KEY is required outside local/dev environments")
	}

	return cfg, nil
}

// DataSourceName returns the database/sql DSN for the configured driver.
func (c DatabaseConfig) DataSourceName() string {
	if c.Driver != DriverPostgres {
		return c.Path
	}
	host := c.Host
	if c.Port > 0 {
		host = fmt.Sprintf("%s:%d", c.Host, c.Port)
	}
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   host,
		Path:   "/" + c.Name,
	}
	query := url.Values{}
	if c.SSLMode != "" {
		query.Set("sslmode", c.SSLMode)
	}
	if c.Schema != "" {
		query.Set("search_path", c.Schema)
	}
	dsn.RawQuery = query.Encode()
	return dsn.String()
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"tflwatch_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
