package providers

import (
	"errors"
	"fmt"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var ErrUnknownModel = errors.New("providers: unknown model")

// Factory builds one concrete provider implementation from its configuration
// view.
type Factory func(cfg domain.ConfigReader) (domain.Method, error)

// Registry maps provider model identifiers (the value of a provider config's
// "model" field) to factories.
type Registry struct {
	models map[string]Factory
}

var _ domain.ProviderRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{models: map[string]Factory{}}
}

// Register binds a factory to a model identifier, replacing any previous
// binding.
func (r *Registry) Register(model string, f Factory) *Registry {
	r.models[model] = f
	return r
}

func (r *Registry) Instantiate(model string, cfg domain.ConfigReader) (domain.Method, error) {
	f, ok := r.models[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return f(cfg)
}
