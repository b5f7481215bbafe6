package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Logger   Logger   `mapstructure:"logger"`
	Agent    Agent    `mapstructure:"agent"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port      int    `mapstructure:"port"`
	SecretKey string `mapstructure:"secret_key"`
	ApiKey    string `mapstructure:"api_key"`
}

// Database holds the configuration for the database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Agent holds the configuration for the terminal sync agent.
type Agent struct {
	ServerURL      string  `mapstructure:"server_url"`
	ApiKey         string  `mapstructure:"api_key"`
	AccountNumber  string  `mapstructure:"account_number"`
	Password       string  `mapstructure:"password"`
	Broker         string  `mapstructure:"broker"`
	ReportFile     string  `mapstructure:"report_file"`
	BatchSize      int     `mapstructure:"batch_size"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.secret_key", "goldbook_secret_2024")
	viper.SetDefault("server.api_key", "goldbook_api_key")
	viper.SetDefault("database.dsn", "goldbook.db")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("agent.broker", "MT5")
	viper.SetDefault("agent.batch_size", 200)
	viper.SetDefault("agent.rate_limit", 5) // requests per second
	viper.SetDefault("agent.rate_limit_burst", 2)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
