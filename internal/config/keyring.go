package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	// ServiceName is the name used for keyring storage
	ServiceName = "snipper"

	// TokenEnv overrides any stored token
	TokenEnv = "SNIPPER_TOKEN"

	// StoredToken as the token argument selects the stored credential
	StoredToken = "-"
)

// HostFromURL returns the host part of an API URL, used as the keyring key
func HostFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid url %q: missing host", rawURL)
	}
	return u.Host, nil
}

// SetToken stores a token for host in the system keyring
func SetToken(host, token string) error {
	if err := keyring.Set(ServiceName, host, token); err != nil {
		return fmt.Errorf("could not store token: %w", err)
	}
	return nil
}

// GetToken retrieves the token for host from the system keyring
func GetToken(host string) (string, error) {
	token, err := keyring.Get(ServiceName, host)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no token stored for %s. Run 'snipper auth login --hostname %s' first", host, host)
		}
		return "", fmt.Errorf("could not retrieve token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the token for host from the system keyring
func DeleteToken(host string) error {
	err := keyring.Delete(ServiceName, host)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("could not delete token: %w", err)
	}
	return nil
}

// GetTokenFromEnvOrKeyring returns the token for host and where it came from:
// the environment first, then the keyring
func GetTokenFromEnvOrKeyring(host string) (string, string, error) {
	if token := os.Getenv(TokenEnv); token != "" {
		return token, "environment", nil
	}

	token, err := GetToken(host)
	if err != nil {
		return "", "", err
	}

	return token, "keyring", nil
}

// ResolveToken returns token unless it is StoredToken, in which case the
// stored credential for the host of apiURL is looked up
func ResolveToken(apiURL, token string) (string, error) {
	if token != StoredToken {
		return token, nil
	}

	host, err := HostFromURL(apiURL)
	if err != nil {
		return "", err
	}

	stored, _, err := GetTokenFromEnvOrKeyring(host)
	return stored, err
}
