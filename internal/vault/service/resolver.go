package service

import (
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// resolver lazily binds the concrete provider the vault stands in for. It has
// two states: unresolved (bound == nil, the sentinel null provider answers
// capability queries) and resolved (bound holds a validated provider). The
// transition happens at most once per resolver; a new request context gets a
// new resolver.
type resolver struct {
	log      *zap.Logger
	cfg      domain.ConfigReader
	factory  domain.ConfigFactory
	registry domain.ProviderRegistry

	bound domain.Method
	null  domain.Method
}

func newResolver(log *zap.Logger, cfg domain.ConfigReader, factory domain.ConfigFactory, registry domain.ProviderRegistry) *resolver {
	return &resolver{
		log:      log,
		cfg:      cfg,
		factory:  factory,
		registry: registry,
		null:     NewNullProvider(),
	}
}

// provider returns the bound provider, resolving it on first use. While the
// configured code is absent, the model cannot be instantiated, or the
// instantiated provider reports inactive for the store, the resolver stays
// unresolved and the null provider is returned.
func (r *resolver) provider(storeID int64) domain.Method {
	if r.bound != nil {
		return r.bound
	}

	code := cast.ToString(r.cfg.Value(domain.FieldProviderCode, storeID))
	if code == "" {
		return r.null
	}

	providerCfg, err := r.factory.Create(code)
	if err != nil {
		r.log.Warn("provider config unavailable", zap.String("provider", code), zap.Error(err))
		return r.null
	}

	model := cast.ToString(providerCfg.Value(domain.FieldModel, storeID))
	if model == "" {
		r.log.Warn("provider config has no model", zap.String("provider", code))
		return r.null
	}

	provider, err := r.registry.Instantiate(model, providerCfg)
	if err != nil {
		r.log.Warn("provider instantiation failed",
			zap.String("provider", code),
			zap.String("model", model),
			zap.Error(err))
		return r.null
	}

	if provider == nil || !provider.IsActive(storeID) {
		return r.null
	}

	r.bound = provider
	return r.bound
}

// resolved reports whether a real provider is bound.
func (r *resolver) resolved() bool { return r.bound != nil }
