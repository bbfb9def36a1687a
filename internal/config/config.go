package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	AccountSync AccountSync `mapstructure:",squash"`
	Metrics     Metrics     `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	AutoMigrate     bool          `mapstructure:"database_auto_migrate"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Meta struct {
	BaseURL               string  `mapstructure:"meta_base_url"`
	URL                   string  `mapstructure:"-"`
	Version               string  `mapstructure:"meta_version"`
	AccessToken           string  `mapstructure:"meta_access_token"`
	RequestTimeoutSeconds int     `mapstructure:"meta_request_timeout_seconds"`
	RequestsPerSecond     float64 `mapstructure:"meta_requests_per_second"`
	RequestBurst          int     `mapstructure:"meta_request_burst"`
	InsightsLimit         int     `mapstructure:"meta_insights_limit"`
	RateLimitRetrySeconds int     `mapstructure:"meta_rate_limit_retry_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cache struct {
	ExcludedAccounts   []string `mapstructure:"cache_excluded_accounts"`
	TopAdsDefaultLimit int      `mapstructure:"cache_top_ads_default_limit"`
}

type AccountSync struct {
	CronSchedule string `mapstructure:"account_sync_cron"`
	Enabled      bool   `mapstructure:"account_sync_enabled"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Path    string `mapstructure:"metrics_path"`
}

// DefaultExcludedAccounts são contas que nunca aparecem no dashboard, mesmo que existam no banco
var DefaultExcludedAccounts = []string{
	"act_390410388206444",
	"act_1005202918087273",
	"act_727714406369226",
	"act_3733791643562620",
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v24.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5) // ritmo local, não substitui o rate limit da Meta
	viper.SetDefault("META_REQUEST_BURST", 10)
	viper.SetDefault("META_INSIGHTS_LIMIT", 200)
	viper.SetDefault("META_RATE_LIMIT_RETRY_SECONDS", 60) // countdown exibido pela UI

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("CACHE_EXCLUDED_ACCOUNTS", strings.Join(DefaultExcludedAccounts, ","))
	viper.SetDefault("CACHE_TOP_ADS_DEFAULT_LIMIT", 5)

	viper.SetDefault("ACCOUNT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("ACCOUNT_SYNC_ENABLED", false)

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

// normalize preenche os campos derivados e corrige valores que não fazem sentido
func (c *Config) normalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimSuffix(c.Meta.BaseURL, "/"), c.Meta.Version)

	if c.Meta.InsightsLimit <= 0 {
		c.Meta.InsightsLimit = 200
	}
	if c.Meta.RequestTimeoutSeconds <= 0 {
		c.Meta.RequestTimeoutSeconds = 30
	}
	if c.Cache.TopAdsDefaultLimit <= 0 {
		c.Cache.TopAdsDefaultLimit = 5
	}

	excluded := make([]string, 0, len(c.Cache.ExcludedAccounts))
	for _, id := range c.Cache.ExcludedAccounts {
		if id = strings.TrimSpace(id); id != "" {
			excluded = append(excluded, id)
		}
	}
	c.Cache.ExcludedAccounts = excluded

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
