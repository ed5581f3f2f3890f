package env

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Service reads configuration from the process environment. Construction
// loads .env and overlays .env.$APP_ENV once; after that every lookup goes
// straight to the environment.
type Service struct{}

func NewService() *Service {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file found (relying on process environment)")
	}

	if appEnv := os.Getenv("APP_ENV"); appEnv != "" {
		envFile := fmt.Sprintf(".env.%s", appEnv)
		if err := godotenv.Overload(envFile); err != nil {
			log.Printf("Warning: could not load %s: %v", envFile, err)
		}
	}

	return &Service{}
}

// MissingError reports a required variable that is absent or empty.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s must be set in the environment variables", e.Key)
}

func (s *Service) Get(key string) string {
	return os.Getenv(key)
}

// Require returns the value of key, or a *MissingError. An empty value
// counts as missing.
func (s *Service) Require(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", &MissingError{Key: key}
	}
	return val, nil
}

// Set persists a value into the process environment so later lookups see it.
func (s *Service) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (s *Service) GetBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (s *Service) GetInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
