package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	S3       S3Config       `mapstructure:"s3"`
	Renderer RendererConfig `mapstructure:"renderer"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Weather  WeatherConfig  `mapstructure:"weather"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // "dev" or "prod"
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// AssetsConfig locates embeddable report assets. Root is the local static
// file root; Logo and Hero are paths relative to it.
type AssetsConfig struct {
	Root string `mapstructure:"root"`
	Logo string `mapstructure:"logo"`
	Hero string `mapstructure:"hero"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// RendererConfig bounds the headless browser session. ChartTimeout caps the
// wait for the in-page charts-ready signal.
type RendererConfig struct {
	ChartTimeout time.Duration `mapstructure:"chart_timeout"`
	PageTimeout  time.Duration `mapstructure:"page_timeout"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type WeatherConfig struct {
	ForecastURL   string `mapstructure:"forecast_url"`
	AirQualityURL string `mapstructure:"air_quality_url"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, gemini.api_key -> GEMINI_API_KEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("log.mode", "dev")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "healieve")
	viper.SetDefault("assets.root", "public")
	viper.SetDefault("assets.logo", "healieve-logo.png")
	viper.SetDefault("assets.hero", "fitness-hero.jpg")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("renderer.chart_timeout", "15s")
	viper.SetDefault("renderer.page_timeout", "60s")
	viper.SetDefault("jwt.expiration", "1h")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("weather.forecast_url", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("weather.air_quality_url", "https://air-quality-api.open-meteo.com/v1/air-quality")

	err = viper.ReadInConfig()
	// Config file is optional; env vars and defaults may be enough.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
