package config

import (
	"fmt" // DSN formatting
	"os"  // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	DBSSLMode     string // Database SSL mode
	TemplatesGlob string // Glob for admin HTML templates
	StaticDir     string // Directory served under /static
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:       getenv("APP_PORT", "8000"),                   // Application port
		DBUser:        os.Getenv("DB_USER"),                         // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                     // Database password
		DBHost:        getenv("DB_HOST", "localhost"),               // Database host
		DBPort:        getenv("DB_PORT", "5432"),                    // Database port
		DBName:        os.Getenv("DB_NAME"),                         // Database name
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),              // Database SSL mode
		TemplatesGlob: getenv("PATH_TEMPLATES", "templates/*.html"), // Admin templates
		StaticDir:     getenv("PATH_STATIC", "static"),              // Static assets
		IsProd:        os.Getenv("IS_PROD") == "true",               // Is production environment
	}
}

// DSN builds the Postgres connection string from the loaded configuration
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

// getenv returns the environment value for key, or fallback when unset
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
