package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service     = "injaz"
	apiKeyUser  = "assistant-api-key"
	connStrUser = "postgres-connection"
)

var (
	// ErrNotFound is returned when no credential is stored in the keyring
	ErrNotFound = errors.New("credential not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	value, err := keyring.Get(service, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

func set(user, value string) error {
	if value == "" {
		return errors.New("credential cannot be empty")
	}
	if err := keyring.Set(service, user, value); err != nil {
		return fmt.Errorf("failed to store credential in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	err := keyring.Delete(service, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credential from keyring: %w", err)
	}
	return nil
}

// GetAPIKey retrieves the assistant API key from the OS keyring.
func GetAPIKey() (string, error) { return get(apiKeyUser) }

// SetAPIKey stores the assistant API key in the OS keyring.
func SetAPIKey(key string) error { return set(apiKeyUser, key) }

// DeleteAPIKey removes the assistant API key from the OS keyring.
func DeleteAPIKey() error { return del(apiKeyUser) }

// GetConnectionString retrieves the Postgres connection string from the OS
// keyring.
func GetConnectionString() (string, error) { return get(connStrUser) }

// SetConnectionString stores the Postgres connection string in the OS
// keyring.
func SetConnectionString(connStr string) error { return set(connStrUser, connStr) }

// DeleteConnectionString removes the Postgres connection string from the OS
// keyring.
func DeleteConnectionString() error { return del(connStrUser) }
