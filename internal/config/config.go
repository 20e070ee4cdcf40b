package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	jwtSecretEnvKey     = "JWT_SECRET"
	jwtExpirationEnvKey = "JWT_EXPIRATION"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	JWTExpiration   time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	jwtExpiration, ok := os.LookupEnv(jwtExpirationEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtExpirationEnvKey)
	}

	expiration, err := time.ParseDuration(jwtExpiration)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", jwtExpirationEnvKey, err)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		JWTExpiration:   expiration,
	}, nil
}
