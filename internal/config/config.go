package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// defaultSecret is only acceptable for local development; Load refuses to
// start a prod process with it.
const defaultSecret = "change-me-in-production"

// Config holds all runtime configuration values. It is built once at startup
// and passed by value into constructors; core packages never read the
// environment themselves.
type Config struct {
	Env          string   // application environment (e.g. "dev", "prod")
	Port         string   // HTTP port to listen on
	BasePath     string   // URL prefix for all API routes
	MongoURI     string   // MongoDB connection string
	MongoDB      string   // MongoDB database name
	CORSOrigins  []string // origins allowed by the CORS middleware
	SecretKey    string   // symmetric key used to sign access tokens
	Algorithm    string   // JWT signing algorithm name (HS256 family)
	AccessTTLMin int      // access token time-to-live in minutes
	BcryptCost   int      // bcrypt cost for password hashing
}

// Load reads configuration from environment variables. Every value has a
// development default; SECRET_KEY is the one that must be overridden before
// running with APP_ENV=prod.
func Load() Config {
	cfg := Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8000"),
		BasePath:     getenv("API_BASE_PATH", "/api"),
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "motigoal"),
		CORSOrigins:  splitList(getenv("CORS_ORIGINS", "http://localhost:8080,http://localhost:3000")),
		SecretKey:    getenv("SECRET_KEY", defaultSecret),
		Algorithm:    getenv("JWT_ALGORITHM", "HS256"),
		AccessTTLMin: getenvInt("ACCESS_TOKEN_EXPIRE_MIN", 30),
		BcryptCost:   getenvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
	if cfg.Env == "prod" && cfg.SecretKey == defaultSecret {
		log.Fatal("SECRET_KEY must be overridden when APP_ENV=prod")
	}
	return cfg
}

// AccessTTL returns the configured token lifetime as a duration.
func (c Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMin) * time.Minute
}

// getenv returns the value of the environment variable, or the fallback when
// it is unset or empty.
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getenvInt is like getenv but converts the value to an integer. An
// unparseable value is a configuration mistake and aborts startup.
func getenvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

// splitList splits a comma-separated value, trimming spaces and dropping
// empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
