package config

import (
	"errors"

	"github.com/99designs/keyring"
	"github.com/m-mizutani/goerr/v2"
)

const serviceName = "registros"

// TokenStore keeps the API bearer token in the system keyring
type TokenStore struct {
	ring keyring.Keyring
	key  string
}

// NewTokenStore opens the system keyring and stores the token under key
func NewTokenStore(key string) (*TokenStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open keyring")
	}
	return NewTokenStoreWithKeyring(ring, key), nil
}

// NewTokenStoreWithKeyring wraps an already opened keyring
func NewTokenStoreWithKeyring(ring keyring.Keyring, key string) *TokenStore {
	if key == "" {
		key = "token"
	}
	return &TokenStore{ring: ring, key: key}
}

// Token returns the stored token, or "" when none has been saved
func (s *TokenStore) Token() (string, error) {
	item, err := s.ring.Get(s.key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to read token", goerr.V("key", s.key))
	}
	return string(item.Data), nil
}

// SetToken stores the token
func (s *TokenStore) SetToken(token string) error {
	if token == "" {
		return goerr.New("token is empty")
	}
	err := s.ring.Set(keyring.Item{
		Key:   s.key,
		Data:  []byte(token),
		Label: "registros API token",
	})
	if err != nil {
		return goerr.Wrap(err, "failed to store token", goerr.V("key", s.key))
	}
	return nil
}

// DeleteToken removes the token; removing a missing token is not an error
func (s *TokenStore) DeleteToken() error {
	err := s.ring.Remove(s.key)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return goerr.Wrap(err, "failed to remove token", goerr.V("key", s.key))
	}
	return nil
}

// StaticToken is a token source for a token given on the command line
type StaticToken string

// Token returns the literal token
func (t StaticToken) Token() (string, error) {
	return string(t), nil
}
