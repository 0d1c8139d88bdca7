// internal/config/config.go
//
// Process configuration read from the environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win over it.

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // DAILY_TZ must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
)

// Config holds every tunable of the server and CLI.
type Config struct {
	Port     string // PORT
	LogLevel string // LOG_LEVEL
	DBPath   string // DB_PATH; empty keeps state in memory

	AnswersFile string // WORDS_ANSWERS_FILE
	AllowedFile string // WORDS_ALLOWED_FILE

	DailySalt string         // DAILY_SALT; empty uses the day-index rotation
	Location  *time.Location // DAILY_TZ

	AdminPassword string  // ADMIN_PASSWORD
	AdminRPS      float64 // ADMIN_RPS
	AdminBurst    int     // ADMIN_BURST

	JWTSecret      string // JWT_SECRET
	JWTExpiresDays int    // JWT_EXPIRES_DAYS
	ClientOrigin   string // CLIENT_ORIGIN
	Production     bool   // NODE_ENV=production; secure cookies
}

// Load reads .env (if any) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBPath:        os.Getenv("DB_PATH"),
		AnswersFile:   os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:   os.Getenv("WORDS_ALLOWED_FILE"),
		DailySalt:     os.Getenv("DAILY_SALT"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Vincent"),
		JWTSecret:     getEnv("JWT_SECRET", "dev_secret_change_me"),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:    os.Getenv("NODE_ENV") == "production",
	}

	tz := getEnv("DAILY_TZ", "Europe/Prague")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("DAILY_TZ: %w", err)
	}
	cfg.Location = loc

	if cfg.JWTExpiresDays, err = envInt("JWT_EXPIRES_DAYS", 180); err != nil {
		return Config{}, err
	}
	if cfg.AdminBurst, err = envInt("ADMIN_BURST", 5); err != nil {
		return Config{}, err
	}
	if cfg.AdminRPS, err = envFloat("ADMIN_RPS", 0.2); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envFloat(k string, def float64) (float64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return f, nil
}
