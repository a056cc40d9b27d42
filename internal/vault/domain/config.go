package domain

// ConfigReader resolves store-scoped configuration values for one payment
// method. A nil value means the field is not configured for the scope.
type ConfigReader interface {
	Value(field string, storeID int64) any
}

// ConfigFactory builds the configuration view of a named payment method.
type ConfigFactory interface {
	Create(methodCode string) (ConfigReader, error)
}

// ValueSubject describes the field a value handler is asked to resolve.
type ValueSubject struct {
	Field string
}

// ValueHandler decides the effective value of one configuration field for a
// store. Most fields use the default store-scoped lookup; fields with custom
// merge or fallback logic register their own handler.
type ValueHandler interface {
	Handle(subject ValueSubject, storeID int64) any
}

// ValueHandlerPool maps field names to their value handlers. Lookup never
// fails: fields without a registered handler resolve through the pool's
// default handler.
type ValueHandlerPool interface {
	Get(field string) ValueHandler
}

// ProviderRegistry instantiates concrete provider implementations from the
// model identifier named in their configuration.
type ProviderRegistry interface {
	Instantiate(model string, cfg ConfigReader) (Method, error)
}
