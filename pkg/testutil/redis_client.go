package testutil

import (
	"context"
	"strings"
	"sync"
)

// MockRedisClient is a map-backed in-memory stand-in for xredis.Client.
type MockRedisClient struct {
	mutex  sync.Mutex
	values map[string]string
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		values: make(map[string]string),
	}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, ok := m.values[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, k := range key {
		delete(m.values, k)
	}

	return nil
}

func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	prefix := strings.TrimSuffix(pattern, "*")
	keys := []string{}
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	return keys, nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = value
	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.values[key], nil
}

func (m *MockRedisClient) MGet(ctx context.Context, keys ...string) ([]any, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := []any{}
	for _, k := range keys {
		if v, ok := m.values[k]; ok {
			result = append(result, v)
		} else {
			result = append(result, nil)
		}
	}

	return result, nil
}
