package config

import (
	"os"
	"path/filepath"
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
	defaultAPITimeout         = 10 * time.Second
	defaultStorageProvider    = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// HTTP configures the mock catalog/chat backend
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

	// API is the catalog/chat service the assistant talks to
	API *APIConfig `json:"api" yaml:"api"`

	// Lifecycle tunes the simulated order stages
	Lifecycle *LifecycleConfig `json:"lifecycle" yaml:"lifecycle"`

	// Storage selects the device persistence backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for lifecycle event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Payment configures the UPI payment QR
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// Market configures the mock backend catalog
	Market *MarketConfig `json:"market" yaml:"market"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// Output is "stdout" or "stderr"; the console assistant keeps stdout for the chat
	Output string `json:"output" yaml:"output"`
}

// APIConfig defines the catalog/chat service endpoint
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LifecycleConfig defines delays and simulated failure rates of the order lifecycle
type LifecycleConfig struct {
	AvailabilityDelay  time.Duration `json:"availabilityDelay" yaml:"availabilityDelay"`
	SummaryDelay       time.Duration `json:"summaryDelay" yaml:"summaryDelay"`
	NoticeDelay        time.Duration `json:"noticeDelay" yaml:"noticeDelay"`
	VendorContactDelay time.Duration `json:"vendorContactDelay" yaml:"vendorContactDelay"`
	DispatchDelay      time.Duration `json:"dispatchDelay" yaml:"dispatchDelay"`
	DeliveryDelay      time.Duration `json:"deliveryDelay" yaml:"deliveryDelay"`

	// Probability in [0,1] that the availability check reports items out of stock
	UnavailableChance float64 `json:"unavailableChance" yaml:"unavailableChance"`

	// Probability in [0,1] that the vendor rejects the order
	VendorRejectChance float64 `json:"vendorRejectChance" yaml:"vendorRejectChance"`

	// Seed for the outcome decider; 0 seeds from the clock
	Seed uint64 `json:"seed" yaml:"seed"`

	EstimatedDeliveryTime string `json:"estimatedDeliveryTime" yaml:"estimatedDeliveryTime"`
}

// StorageConfig defines the persistence backend
type StorageConfig struct {
	// Provider type: "memory", "blob", "redis" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Bucket URL for the blob provider, e.g. "file:///var/lib/bezgo" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
		Prefix   string `json:"prefix" yaml:"prefix"`
	} `json:"redis" yaml:"redis"`
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
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

	// Optional API endpoint override for the google provider, e.g. an emulator address
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Optional service account credentials file for the google provider
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PaymentConfig defines UPI payment QR generation
type PaymentConfig struct {
	PayeeVPA             string `json:"payeeVpa" yaml:"payeeVpa"`
	PayeeName            string `json:"payeeName" yaml:"payeeName"`
	QRSize               int    `json:"qrSize" yaml:"qrSize"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MarketConfig defines the origin used for vendor distance labels
type MarketConfig struct {
	OriginLat float64 `json:"originLat" yaml:"originLat"`
	OriginLng float64 `json:"originLng" yaml:"originLng"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseUrl
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills the sections a minimal config file may omit.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.Lifecycle == nil {
		cfg.Lifecycle = DefaultLifecycle()
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = defaultStorageProvider
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Market == nil {
		cfg.Market = &MarketConfig{}
	}
}

// DefaultLifecycle returns the stage delays and failure rates of the reference app.
func DefaultLifecycle() *LifecycleConfig {
	return &LifecycleConfig{
		AvailabilityDelay:     2500 * time.Millisecond,
		SummaryDelay:          1500 * time.Millisecond,
		NoticeDelay:           500 * time.Millisecond,
		VendorContactDelay:    3 * time.Second,
		DispatchDelay:         8 * time.Second,
		DeliveryDelay:         60 * time.Second,
		UnavailableChance:     0.1,
		VendorRejectChance:    0.1,
		EstimatedDeliveryTime: "30 mins",
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
