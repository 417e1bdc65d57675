package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultUsername = "admin"
	defaultPassword = "12345"
	defaultRole     = "admin"
)

// Load reads the env file named by START (a plain .env is picked up when
// present) and fails hard when a required variable is missing.
func Load(required ...string) {
	if file := os.Getenv("START"); file != "" {
		if err := godotenv.Load(file); err != nil {
			log.Fatalf("Env file not found")
		}
	} else {
		_ = godotenv.Load()
	}

	for _, key := range required {
		if os.Getenv(key) == "" {
			log.Fatalf("%s is not set in environment", key)
		}
	}
}

// Addr returns HTTP_ADDR or the given default.
func Addr(def string) string {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		return addr
	}
	return def
}

// Credentials returns the single configured username/password/role triple.
// Defaults match the instructional pair so both services run without an env file.
func Credentials() (username, password, role string) {
	username = envOr("AUTH_USERNAME", defaultUsername)
	password = envOr("AUTH_PASSWORD", defaultPassword)
	role = envOr("AUTH_ROLE", defaultRole)
	return
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
