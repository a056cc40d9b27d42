package config

import (
	"errors"
	"strings"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var ErrEmptyMethodCode = errors.New("gateway config: method code is empty")

// Source is the raw store-scoped key/value backend a Config reads through.
type Source interface {
	Get(methodCode, field string, storeID int64) (any, bool)
}

// Config is the configuration view of one payment method, scoped per store.
type Config struct {
	methodCode string
	source     Source
}

var _ domain.ConfigReader = (*Config)(nil)

func New(source Source, methodCode string) *Config {
	return &Config{methodCode: methodCode, source: source}
}

func (c *Config) MethodCode() string { return c.methodCode }

// Value returns the configured value for the field at the given store, or nil
// when the field is not configured.
func (c *Config) Value(field string, storeID int64) any {
	if v, ok := c.source.Get(c.methodCode, field, storeID); ok {
		return v
	}
	return nil
}

// Factory builds configuration views for named payment methods.
type Factory struct {
	source Source
}

var _ domain.ConfigFactory = (*Factory)(nil)

func NewFactory(source Source) *Factory {
	return &Factory{source: source}
}

func (f *Factory) Create(methodCode string) (domain.ConfigReader, error) {
	methodCode = strings.TrimSpace(methodCode)
	if methodCode == "" {
		return nil, ErrEmptyMethodCode
	}
	return New(f.source, methodCode), nil
}
