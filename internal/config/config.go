// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"finance-tracker/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	Auth       AuthConfig
}

// AuthConfig holds token signing secrets, token lifetimes, and the
// bcrypt cost used for password hashing. The two secrets are independent
// so that an access-token secret compromise does not extend to refresh
// tokens.
type AuthConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any required variable
// is missing or invalid. JWT_SECRET and JWT_REFRESH_SECRET are required;
// everything else has local-development defaults.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost" // Default to localhost for local development
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432" // Default PostgreSQL port
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "financedb"
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	auth, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		Auth: auth,
	}, nil
}

func loadAuthConfig() (AuthConfig, error) {
	accessSecret := os.Getenv("JWT_SECRET")
	if accessSecret == "" {
		return AuthConfig{}, fmt.Errorf("JWT_SECRET is required")
	}
	refreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if refreshSecret == "" {
		return AuthConfig{}, fmt.Errorf("JWT_REFRESH_SECRET is required")
	}

	accessTTL := 15 * time.Minute
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		accessTTL, _ = time.ParseDuration(v)
		if accessTTL <= 0 {
			return AuthConfig{}, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %q", v)
		}
	}
	refreshTTL := 7 * 24 * time.Hour
	if v := os.Getenv("REFRESH_TOKEN_TTL"); v != "" {
		refreshTTL, _ = time.ParseDuration(v)
		if refreshTTL <= 0 {
			return AuthConfig{}, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %q", v)
		}
	}

	bcryptCost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return AuthConfig{}, fmt.Errorf("invalid BCRYPT_COST: %q", v)
		}
		bcryptCost = cost
	}

	return AuthConfig{
		AccessSecret:    accessSecret,
		RefreshSecret:   refreshSecret,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
		BcryptCost:      bcryptCost,
	}, nil
}
