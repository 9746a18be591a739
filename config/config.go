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
	defaultPollInterval       = 5 * time.Second
	defaultPollMaxAttempts    = 60
	defaultSessionTTL         = 2 * time.Hour
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

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Admin configures the single shared-secret operator gate.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// QPay configures the external QR payment provider client.
	QPay *QPayConfig `json:"qpay" yaml:"qpay"`

	// Mail configures the transactional SMTP mailer.
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// QRCode configures the local invoice QR fallback renderer.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Orders configures order status handling.
	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// Delivery configures the geographic delivery zone check.
	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	// PubSub configures order event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage configures the product image object store.
	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AdminConfig defines the operator gate. PasswordHash is a bcrypt hash of the
// shared secret; Password is a plaintext fallback for local development and is
// compared in constant time when no hash is configured.
type AdminConfig struct {
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	Password     string        `json:"password" yaml:"password"`
	SessionTTL   time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	AdminEmail   string        `json:"adminEmail" yaml:"adminEmail"`
}

// QPayConfig defines the payment provider connection and polling policy.
type QPayConfig struct {
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	InvoiceCode string `json:"invoiceCode" yaml:"invoiceCode"`
	CallbackURL string `json:"callbackUrl" yaml:"callbackUrl"`

	// PollInterval and PollMaxAttempts bound the server-side invoice watch:
	// one status check per interval, stopping after the attempt budget.
	PollInterval    time.Duration `json:"pollInterval" yaml:"pollInterval"`
	PollMaxAttempts int           `json:"pollMaxAttempts" yaml:"pollMaxAttempts"`
}

// MailConfig defines the SMTP sender for order confirmations.
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// OrdersConfig defines order status handling.
type OrdersConfig struct {
	// StrictTransitions enforces the status transition table. The default
	// (false) preserves the permissive behavior where any status may follow
	// any other, which support staff rely on for manual overrides.
	StrictTransitions bool `json:"strictTransitions" yaml:"strictTransitions"`
}

// DeliveryConfig defines the store location and delivery radius.
type DeliveryConfig struct {
	StoreLatitude  float64 `json:"storeLatitude" yaml:"storeLatitude"`
	StoreLongitude float64 `json:"storeLongitude" yaml:"storeLongitude"`
	MaxRadiusKm    float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// PubSubConfig defines Pub/Sub configuration for order event publishing.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Optional service account credentials file (for google provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StorageConfig defines the blob bucket holding product images.
type StorageConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "gs://optika-assets" or
	// "file:///var/optika/images" for local development.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes stored object keys to form servable URLs.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
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
			// Example: QPAY_BASEURL -> qpay.baseUrl (not qpay.baseurl)
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

	if cfg.QPay != nil {
		if cfg.QPay.PollInterval <= 0 {
			cfg.QPay.PollInterval = defaultPollInterval
		}
		if cfg.QPay.PollMaxAttempts <= 0 {
			cfg.QPay.PollMaxAttempts = defaultPollMaxAttempts
		}
	}

	if cfg.Admin != nil && cfg.Admin.SessionTTL <= 0 {
		cfg.Admin.SessionTTL = defaultSessionTTL
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
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
