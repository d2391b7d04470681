package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env-default:"prod"`
	PostgreSQL  PostgreSQL  `yaml:"postgresql"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	JWT         JWT         `yaml:"jwt"`
	Minio       Minio       `yaml:"minio"`
	Geolocation Geolocation `yaml:"geolocation"`
	Routing     Routing     `yaml:"routing"`
	Map         Map         `yaml:"map"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env-required:"true"`
	Port     string `yaml:"port" env-required:"true"`
	Username string `yaml:"username" env-required:"true"`
	Password string `yaml:"password" env-required:"true"`
	Database string `yaml:"database" env-required:"true"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env-required:"true"`
	// long enough for a locate round trip against the geolocation provider
	Timeout          time.Duration `yaml:"timeout" env-default:"15s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"*"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
}

type JWT struct {
	Secret          string        `yaml:"secret" env-required:"true"`
	SessionTokenTTL time.Duration `yaml:"session_token_ttl" env-default:"24h"`
}

type Minio struct {
	Endpoint        string        `yaml:"endpoint" env-required:"true"`
	AccessKeyID     string        `yaml:"access_key_id" env-required:"true"`
	SecretAccessKey string        `yaml:"secret_access_key" env-required:"true"`
	UseSSL          bool          `yaml:"use_ssl"`
	ImagesBucket    string        `yaml:"images_bucket" env-default:"product-images"`
	ImageURLTTL     time.Duration `yaml:"image_url_ttl" env-default:"1h"`
}

type Geolocation struct {
	ProviderURL  string        `yaml:"provider_url" env-required:"true"`
	HighAccuracy bool          `yaml:"high_accuracy" env-default:"true"`
	Timeout      time.Duration `yaml:"timeout" env-default:"10s"`
	MaximumAge   time.Duration `yaml:"maximum_age" env-default:"5m"`
}

type Routing struct {
	BaseURL string        `yaml:"base_url" env-required:"true"`
	Profile string        `yaml:"profile" env-default:"driving"`
	Timeout time.Duration `yaml:"timeout" env-default:"15s"`
}

type Map struct {
	DefaultLatitude  float64       `yaml:"default_latitude" env-default:"16.5062"`
	DefaultLongitude float64       `yaml:"default_longitude" env-default:"80.648"`
	DefaultZoom      int           `yaml:"default_zoom" env-default:"12"`
	FitPadding       int           `yaml:"fit_padding" env-default:"50"`
	SessionTTL       time.Duration `yaml:"session_ttl" env-default:"30m"`
	SweepInterval    time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
