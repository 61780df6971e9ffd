package auth

// MockStore is an in-memory credential store for testing.
type MockStore struct {
	values map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string]string)}
}

func (m *MockStore) Set(key string, value string) error {
	m.values[key] = value
	return nil
}

func (m *MockStore) Get(key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", ErrCredentialNotFound
	}
	return value, nil
}

func (m *MockStore) Delete(key string) error {
	if _, ok := m.values[key]; !ok {
		return ErrCredentialNotFound
	}
	delete(m.values, key)
	return nil
}
