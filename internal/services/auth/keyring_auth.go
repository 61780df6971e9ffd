package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) Set(key string, value string) error {
	return keyring.Set(k.serviceName, key, value)
}

func (k *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(k.serviceName, key)
	if err == nil {
		return value, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrCredentialNotFound
	}
	return "", err
}

func (k *KeyringStore) Delete(key string) error {
	err := keyring.Delete(k.serviceName, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrCredentialNotFound
	}
	return err
}
