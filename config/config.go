// Package config loads the service configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for the Firestore backing store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Gemini configuration for the text generation service
	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	// Mentor configuration for the conversation state machine
	Mentor *MentorConfig `json:"mentor" yaml:"mentor"`

	// Referral configuration for the commission ledger
	Referral *ReferralConfig `json:"referral" yaml:"referral"`

	// QRCode configuration for referral share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for payment event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project backing the document store.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// GeminiConfig defines the Gemini text generation settings.
type GeminiConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
	Model  string `json:"model" yaml:"model"`

	// RequestTimeout bounds a single generation call. Expiry is treated the
	// same as an empty model response.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// MentorConfig defines tunables for the mentor conversation state machine.
type MentorConfig struct {
	// ProgressIncrement is the score added per completed plan task.
	ProgressIncrement int `json:"progressIncrement" yaml:"progressIncrement"`

	// CompleteThreshold is the score at which the plan counts as finished.
	CompleteThreshold int `json:"completeThreshold" yaml:"completeThreshold"`
}

// ReferralConfig defines the commission program settings.
type ReferralConfig struct {
	// CommissionAmount credited to a referrer per referred purchase.
	CommissionAmount float64 `json:"commissionAmount" yaml:"commissionAmount"`

	// SignupBaseURL is the public signup page that referral links point at.
	SignupBaseURL string `json:"signupBaseUrl" yaml:"signupBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for payment event publishing.
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

// Defaults applied when the corresponding keys are absent.
const (
	DefaultProgressIncrement = 14
	DefaultCompleteThreshold = 98
	DefaultCommissionAmount  = 10
	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultRequestTimeout    = 30 * time.Second
)

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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
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

	// Load environment variables. FIREBASE_PROJECTID becomes firebase.projectId
	// by aligning each segment with the keys already present in the YAML map.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Mentor == nil {
		cfg.Mentor = &MentorConfig{}
	}
	if cfg.Mentor.ProgressIncrement <= 0 {
		cfg.Mentor.ProgressIncrement = DefaultProgressIncrement
	}
	if cfg.Mentor.CompleteThreshold <= 0 {
		cfg.Mentor.CompleteThreshold = DefaultCompleteThreshold
	}

	if cfg.Referral == nil {
		cfg.Referral = &ReferralConfig{}
	}
	if cfg.Referral.CommissionAmount <= 0 {
		cfg.Referral.CommissionAmount = DefaultCommissionAmount
	}

	if cfg.Gemini != nil {
		if cfg.Gemini.Model == "" {
			cfg.Gemini.Model = DefaultGeminiModel
		}
		if cfg.Gemini.RequestTimeout <= 0 {
			cfg.Gemini.RequestTimeout = DefaultRequestTimeout
		}
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

	for key, value := range current {
		if !strings.EqualFold(key, segment) {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}
