// Package config loads the immutable service configuration.
//
// Values come from defaults, an optional guide.yaml file and the environment.
// Provider keys keep their conventional names (SARVAM_API_KEY, GEMINI_API_KEY,
// ORS_API_KEY, GOOGLE_MAPS_API_KEY); everything else can be overridden with
// the GUIDE_ prefix, e.g. GUIDE_LOGGING_LEVEL=debug.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Sarvam  SarvamConfig  `mapstructure:"sarvam"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Maps    MapsConfig    `mapstructure:"maps"`
	Guide   GuideConfig   `mapstructure:"guide"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// SarvamConfig covers translation, language detection, speech recognition
// and synthesis, which all live behind the same provider key.
type SarvamConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	TranslateModel string `mapstructure:"translate_model"`
	STTModel       string `mapstructure:"stt_model"`
	TTSModel       string `mapstructure:"tts_model"`
	Speaker        string `mapstructure:"speaker"`
}

type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"`
	Temperature float32 `mapstructure:"temperature"`
}

type MapsConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Locality      string        `mapstructure:"locality"`
	NominatimURL  string        `mapstructure:"nominatim_url"`
	UserAgent     string        `mapstructure:"user_agent"`
	ORSKey        string        `mapstructure:"ors_key"`
	ORSBaseURL    string        `mapstructure:"ors_base_url"`
	GoogleKey     string        `mapstructure:"google_key"`
	GoogleBaseURL string        `mapstructure:"google_base_url"`
	RedisURL      string        `mapstructure:"redis_url"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

type GuideConfig struct {
	CompareTriggers []string `mapstructure:"compare_triggers"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, text
	File       string `mapstructure:"file"`   // empty disables the rotating file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Load reads configuration. configFile may be empty, in which case guide.yaml
// is looked up in the working directory and ./configs; a missing file is fine.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("guide")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("GUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindProviderEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration produced by defaults alone.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("sarvam.base_url", "https://api.sarvam.ai")
	v.SetDefault("sarvam.translate_model", "sarvam-translate:v1")
	v.SetDefault("sarvam.stt_model", "saaras:v2.5")
	v.SetDefault("sarvam.tts_model", "bulbul:v2")
	v.SetDefault("sarvam.speaker", "anushka")

	v.SetDefault("gemini.base_url", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.temperature", 0.5)

	v.SetDefault("maps.enabled", true)
	v.SetDefault("maps.locality", "Kolkata")
	v.SetDefault("maps.nominatim_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("maps.user_agent", "BabuMoshai-Kolkata-Tourism/1.0")
	v.SetDefault("maps.ors_base_url", "https://api.openrouteservice.org")
	v.SetDefault("maps.google_base_url", "")
	v.SetDefault("maps.cache_ttl", 24*time.Hour)

	v.SetDefault("guide.compare_triggers", []string{"compare ", " vs ", " versus "})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "logs/app.log")
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 14)
}

func bindProviderEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "GUIDE_SERVER_PORT", "PORT")
	_ = v.BindEnv("sarvam.api_key", "SARVAM_API_KEY")
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("maps.ors_key", "ORS_API_KEY")
	_ = v.BindEnv("maps.google_key", "GOOGLE_MAPS_API_KEY")
	_ = v.BindEnv("maps.redis_url", "REDIS_URL")
}

// Missing names the provider keys that are not configured. None of them is
// fatal: each feature degrades on its own.
func (c Config) Missing() []string {
	var out []string
	if c.Sarvam.APIKey == "" {
		out = append(out, "SARVAM_API_KEY")
	}
	if c.Gemini.APIKey == "" {
		out = append(out, "GEMINI_API_KEY")
	}
	if c.Maps.Enabled && c.Maps.ORSKey == "" {
		out = append(out, "ORS_API_KEY")
	}
	return out
}
