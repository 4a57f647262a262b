package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultFixedTermMonths    = 1
	defaultMetricsPath        = "/metrics"

	// Mirrors domain/constants, which config cannot import.
	pubSubProviderLocal  = "local"
	pubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"` // Dashboard origins, empty allows any
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// License configuration for expiration policy and activation key generation
	License *LicenseConfig `json:"license" yaml:"license"`

	// DeviceAPI configuration for the public endpoints used by installed clients
	DeviceAPI *DeviceAPIConfig `json:"deviceApi" yaml:"deviceApi"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// QRCode configuration for activation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for device event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the device event worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LicenseConfig defines how expiration dates and activation keys are computed
type LicenseConfig struct {
	// IANA time zone used for end-of-day normalisation, empty means the server's local zone
	Timezone string `json:"timezone" yaml:"timezone"`

	// Number of calendar months granted by the fixed-term validity type
	FixedTermMonths int `json:"fixedTermMonths" yaml:"fixedTermMonths"`

	// Per-application secrets for activation key generation, keyed by key tag (wab, ems, cbv)
	KeySecrets map[string]string `json:"keySecrets" yaml:"keySecrets"`
}

// DeviceAPIConfig defines limits for the device-facing endpoints
type DeviceAPIConfig struct {
	// Requests per second allowed per client IP, zero disables rate limiting
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the device event worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Verify the OIDC token Pub/Sub attaches to push requests
	VerifyPushAuth bool   `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	PushAudience   string `json:"pushAudience" yaml:"pushAudience"`
}

// MigrationsConfig defines where schema migrations are applied
type MigrationsConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

// LoadWithEnv loads <name>.yaml from the first directory that has it, then applies
// environment overrides such as LICENSE_FIXEDTERMMONTHS onto the existing keys.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	fileKeys := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		// Env overrides arrive lower-cased.
		MatchName: strings.EqualFold,
	}
}

// findConfigFile looks in the working directory first, then in dirs relative to it.
func findConfigFile(name string, dirs []string) (string, error) {
	candidates := []string{defaultPath}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir))
		}
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

// New loads config.yaml, fills defaults and rejects settings the services cannot start with.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.License == nil {
		cfg.License = &LicenseConfig{}
	}
	if cfg.License.FixedTermMonths <= 0 {
		cfg.License.FixedTermMonths = defaultFixedTermMonths
	}
	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func (cfg *Config) validate() error {
	if _, err := time.LoadLocation(cfg.License.Timezone); err != nil {
		return errors.Wrapf(err, "invalid license.timezone %q", cfg.License.Timezone)
	}

	if cfg.DeviceAPI != nil && (cfg.DeviceAPI.RateLimit < 0 || cfg.DeviceAPI.Burst < 0) {
		return errors.New("deviceApi.rateLimit and deviceApi.burst must not be negative")
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case "", pubSubProviderLocal:
		case pubSubProviderGoogle:
			if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
				return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
			}
		default:
			return errors.Errorf("unknown pubsub.provider %q", cfg.PubSub.Provider)
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		lookup := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)
		}

		host, port := lookup("HOST"), lookup("PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: lookup("USERNAME"),
			Password: lookup("PASSWORD"),
		})
	}

	return replicas
}
