package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"newsletter-agent/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct {
	lookup func(key string) (string, bool)
}

// NewEnvService loads .env and then overlays .env.<APP_ENV> into the process environment.
func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file found, using process environment")
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load %s: %v", envFile, err)
	}

	return &EnvService{lookup: os.LookupEnv}
}

// NewMapEnvService serves values from a fixed map, ignoring the process environment.
func NewMapEnvService(values map[string]string) *EnvService {
	return &EnvService{
		lookup: func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		},
	}
}

// NewFileEnvService reads a dotenv file without touching the process environment.
func NewFileEnvService(path string) (*EnvService, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return NewMapEnvService(values), nil
}

func (e *EnvService) Get(key string) string {
	val, _ := e.lookup(key)
	return val
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func (e *EnvService) GetBool(key string, defaultValue bool) (bool, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func (e *EnvService) GetInt(key string, defaultValue int) (int, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func (e *EnvService) GetFloat(key string, defaultValue float64) (float64, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func (e *EnvService) GetDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}
