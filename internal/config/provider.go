package config

import (
	"fmt"
	"maps"
	"sync"

	"github.com/footprint-tools/cmdcon/internal/domain"
)

// Provider is the rc-file backed domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set writes key under the config lock. Unknown keys are rejected.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes key from the rc file so its default applies again.
func (p *Provider) Unset(key string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(lines)
	})
}

// MapProvider is an in-memory ConfigProvider over the static defaults. It
// backs sessions that must not touch the rc file, such as tests.
type MapProvider struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapProvider creates a provider holding overrides on top of defaults.
func NewMapProvider(overrides map[string]string) *MapProvider {
	values := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		values[key.Name] = key.Default
	}
	maps.Copy(values, overrides)
	return &MapProvider{values: values}
}

func (m *MapProvider) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MapProvider) GetAll() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.values), nil
}

func (m *MapProvider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}

func (m *MapProvider) Unset(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := domain.GetDefaultValue(key); ok {
		m.values[key] = v
	} else {
		delete(m.values, key)
	}
	return nil
}

var (
	_ domain.ConfigProvider = (*Provider)(nil)
	_ domain.ConfigProvider = (*MapProvider)(nil)
)
