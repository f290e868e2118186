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

	defaultWalkingSpeedMps         = 1.4
	defaultIndoorSpeedMps          = 1.0
	defaultCurrentShopRadiusMeters = 10.0
	defaultMarketSearchRadiusKm    = 5.0
	defaultShopIndexResolution     = 9
	defaultExternalRouteTimeout    = 10 * time.Second
	defaultExternalRouteCacheTTL   = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds the HMAC secret used to verify access tokens issued by the account service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// ExternalRoutes configures the optional third-party directions providers
	ExternalRoutes *ExternalRoutesConfig `json:"externalRoutes" yaml:"externalRoutes"`

	// Redis is used as the external route cache; leave empty to disable caching
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for navigation session events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for shop navigation codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NavigationConfig tunes the navigation engine. Zero values fall back to the defaults in the usecase layer.
type NavigationConfig struct {
	// Average walking speed in meters per second used for outdoor ETAs
	WalkingSpeedMps float64 `json:"walkingSpeedMps" yaml:"walkingSpeedMps"`

	// Indoor walking speed in meters per second
	IndoorSpeedMps float64 `json:"indoorSpeedMps" yaml:"indoorSpeedMps"`

	// Radius used to decide which shop a user is standing at
	CurrentShopRadiusMeters float64 `json:"currentShopRadiusMeters" yaml:"currentShopRadiusMeters"`

	// Hard cutoff for nearest-market detection
	MarketSearchRadiusKm float64 `json:"marketSearchRadiusKm" yaml:"marketSearchRadiusKm"`

	// H3 resolution used to bucket shops for nearby lookups
	ShopIndexResolution int `json:"shopIndexResolution" yaml:"shopIndexResolution"`

	// Base URL embedded in shop navigation QR codes
	DeepLinkBaseURL string `json:"deepLinkBaseUrl" yaml:"deepLinkBaseUrl"`
}

// ExternalRoutesConfig defines outbound directions provider configuration
type ExternalRoutesConfig struct {
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL           time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
	RateLimitPerSecond float64       `json:"rateLimitPerSecond" yaml:"rateLimitPerSecond"`
	Burst              int           `json:"burst" yaml:"burst"`

	Google struct {
		APIKey  string `json:"apiKey" yaml:"apiKey"`
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"google" yaml:"google"`

	Mapbox struct {
		AccessToken string `json:"accessToken" yaml:"accessToken"`
		BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"mapbox" yaml:"mapbox"`
}

// RedisConfig defines the Redis connection used for caching
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
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

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills the navigation and external route sections left empty in the yaml.
func applyDefaults(cfg *Config) {
	if cfg.Navigation == nil {
		cfg.Navigation = &NavigationConfig{}
	}
	nav := cfg.Navigation
	if nav.WalkingSpeedMps <= 0 {
		nav.WalkingSpeedMps = defaultWalkingSpeedMps
	}
	if nav.IndoorSpeedMps <= 0 {
		nav.IndoorSpeedMps = defaultIndoorSpeedMps
	}
	if nav.CurrentShopRadiusMeters <= 0 {
		nav.CurrentShopRadiusMeters = defaultCurrentShopRadiusMeters
	}
	if nav.MarketSearchRadiusKm <= 0 {
		nav.MarketSearchRadiusKm = defaultMarketSearchRadiusKm
	}
	if nav.ShopIndexResolution <= 0 || nav.ShopIndexResolution > 15 {
		nav.ShopIndexResolution = defaultShopIndexResolution
	}

	if cfg.ExternalRoutes == nil {
		cfg.ExternalRoutes = &ExternalRoutesConfig{}
	}
	if cfg.ExternalRoutes.Timeout <= 0 {
		cfg.ExternalRoutes.Timeout = defaultExternalRouteTimeout
	}
	if cfg.ExternalRoutes.CacheTTL <= 0 {
		cfg.ExternalRoutes.CacheTTL = defaultExternalRouteCacheTTL
	}
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
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
