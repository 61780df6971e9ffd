package auth

import "errors"

// ServiceName is the keychain service under which credentials are stored.
const ServiceName = "domctl"

// Credential keys. The API authenticates with a token/secret pair, stored
// as two separate keychain entries.
const (
	KeyToken  = "api-token"
	KeySecret = "api-secret"
)

var ErrCredentialNotFound = errors.New("credential not found")

// Store persists named credentials.
type Store interface {
	Set(key string, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// DefaultStore returns the standard credential store backed by the OS
// keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Credentials reads the API token/secret pair from the store. Both must
// be present.
func Credentials(store Store) (token, secret string, err error) {
	token, err = store.Get(KeyToken)
	if err != nil {
		return "", "", err
	}
	secret, err = store.Get(KeySecret)
	if err != nil {
		return "", "", err
	}
	return token, secret, nil
}
