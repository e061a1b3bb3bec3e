package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	OMDb     OMDbConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Environment string
	Debug       bool
	LogPath     string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type OMDbConfig struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-watchlist")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("OMDB_BASE_URL", "http://www.omdbapi.com")
	viper.SetDefault("OMDB_TIMEOUT_SECONDS", 10)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional; environment variables alone are fine. With an
		// explicit config file viper reports absence as a path error, not
		// ConfigFileNotFoundError, so check both.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Environment: viper.GetString("APP_ENV"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		OMDb: OMDbConfig{
			APIKey:         viper.GetString("OMDB_API_KEY"),
			BaseURL:        viper.GetString("OMDB_BASE_URL"),
			TimeoutSeconds: viper.GetInt("OMDB_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}
