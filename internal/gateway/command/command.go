package command

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/observability"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var (
	ErrCommandNotFound  = errors.New("gateway command: command not found")
	ErrExecutorNotFound = errors.New("gateway command: no executor for provider")
)

// Command is one named gateway operation for a provider family. The actual
// network call to the gateway lives behind this interface.
type Command interface {
	Execute(ctx context.Context, payment domain.OrderPayment, args map[string]any) error
}

// CommandFunc adapts a function to the Command contract.
type CommandFunc func(ctx context.Context, payment domain.OrderPayment, args map[string]any) error

func (f CommandFunc) Execute(ctx context.Context, payment domain.OrderPayment, args map[string]any) error {
	return f(ctx, payment, args)
}

// Executor routes named commands to the commands registered for one provider
// family. Failures from the underlying command propagate unchanged.
type Executor struct {
	log          *zap.Logger
	providerCode string
	commands     map[string]Command
	metrics      *observability.CommandMetrics
}

var _ domain.CommandExecutor = (*Executor)(nil)

func NewExecutor(log *zap.Logger, providerCode string, commands map[string]Command, metrics *observability.CommandMetrics) *Executor {
	return &Executor{
		log:          log.Named("gateway.command"),
		providerCode: providerCode,
		commands:     commands,
		metrics:      metrics,
	}
}

func (e *Executor) ExecuteByCode(ctx context.Context, commandCode string, payment domain.OrderPayment, args map[string]any) error {
	cmd, ok := e.commands[commandCode]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrCommandNotFound, e.providerCode, commandCode)
	}

	err := cmd.Execute(ctx, payment, args)
	e.metrics.ObserveCommand(e.providerCode, commandCode, err)
	if err != nil {
		e.log.Warn("command failed",
			zap.String("provider", e.providerCode),
			zap.String("command", commandCode),
			zap.Error(err))
		return err
	}

	e.log.Debug("command executed",
		zap.String("provider", e.providerCode),
		zap.String("command", commandCode))
	return nil
}

// Pool keys command executors by provider code, one executor per provider
// family.
type Pool struct {
	executors map[string]domain.CommandExecutor
}

var _ domain.CommandPool = (*Pool)(nil)

func NewPool(executors map[string]domain.CommandExecutor) *Pool {
	if executors == nil {
		executors = map[string]domain.CommandExecutor{}
	}
	return &Pool{executors: executors}
}

// Register binds an executor to a provider code.
func (p *Pool) Register(providerCode string, e domain.CommandExecutor) {
	p.executors[providerCode] = e
}

func (p *Pool) Get(providerCode string) (domain.CommandExecutor, error) {
	e, ok := p.executors[providerCode]
	if !ok || providerCode == "" {
		return nil, fmt.Errorf("%w: %q", ErrExecutorNotFound, providerCode)
	}
	return e, nil
}
