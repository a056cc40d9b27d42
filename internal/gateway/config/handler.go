package config

import (
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// ValueHandler resolves one field through the method's config reader. It is
// the default strategy for every field without a registered handler.
type ValueHandler struct {
	cfg domain.ConfigReader
}

var _ domain.ValueHandler = (*ValueHandler)(nil)

func NewValueHandler(cfg domain.ConfigReader) *ValueHandler {
	return &ValueHandler{cfg: cfg}
}

func (h *ValueHandler) Handle(subject domain.ValueSubject, storeID int64) any {
	return h.cfg.Value(subject.Field, storeID)
}

// ValueHandlerFunc adapts a function to the ValueHandler contract.
type ValueHandlerFunc func(subject domain.ValueSubject, storeID int64) any

func (f ValueHandlerFunc) Handle(subject domain.ValueSubject, storeID int64) any {
	return f(subject, storeID)
}

// HandlerPool maps field names to value handlers. Construction requires a
// default handler so lookup can never fail.
type HandlerPool struct {
	handlers map[string]domain.ValueHandler
	fallback domain.ValueHandler
}

var _ domain.ValueHandlerPool = (*HandlerPool)(nil)

func NewHandlerPool(fallback domain.ValueHandler, handlers map[string]domain.ValueHandler) *HandlerPool {
	if handlers == nil {
		handlers = map[string]domain.ValueHandler{}
	}
	return &HandlerPool{handlers: handlers, fallback: fallback}
}

// Register binds a handler to a field, replacing any previous registration.
func (p *HandlerPool) Register(field string, h domain.ValueHandler) {
	p.handlers[field] = h
}

func (p *HandlerPool) Get(field string) domain.ValueHandler {
	if h, ok := p.handlers[field]; ok {
		return h
	}
	return p.fallback
}
