package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string
	DBPort       int
	DBUser       string
	DBPass       string
	DBName       string
	JWTSecret    string
	Port         string
	FrontendURLs []string
	SeedDemo     bool
}

// LoadEnv reads .env into the process environment. A missing file is fine,
// deployments set the variables directly.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		DBHost:       firstNonEmpty(os.Getenv("DB_HOST"), "127.0.0.1"),
		DBUser:       os.Getenv("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBName:       os.Getenv("DB_NAME"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		Port:         firstNonEmpty(os.Getenv("PORT"), "8080"),
		FrontendURLs: splitList(firstNonEmpty(os.Getenv("FRONTEND_URL"), "http://localhost:3000")),
	}

	var errs []error

	port, err := strconv.Atoi(firstNonEmpty(os.Getenv("DB_PORT"), "3306"))
	if err != nil || port <= 0 {
		errs = append(errs, fmt.Errorf("invalid DB_PORT %q", os.Getenv("DB_PORT")))
	}
	cfg.DBPort = port

	if p, err := strconv.Atoi(cfg.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %q", cfg.Port))
	}

	if raw := os.Getenv("SEED_DEMO"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid SEED_DEMO %q", raw))
		}
		cfg.SeedDemo = seed
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.DBUser == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if cfg.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
