package engine

import (
	"errors"
	"log/slog"

	"github.com/vk/autoreg/internal/hooks"
	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/policy"
)

// ErrNilProvider is returned when a scan is given no provider.
var ErrNilProvider = errors.New("registration provider must not be nil")

// Engine scans registrar types described by a metadata facility.
type Engine struct {
	facility meta.Facility
	hooks    *hooks.Bus
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithHooks sets the observation bus. Listeners should be subscribed before
// the first scan.
func WithHooks(bus *hooks.Bus) Option {
	return func(e *Engine) {
		e.hooks = bus
	}
}

// WithLogger sets the logger used when the scan context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine over facility.
func New(facility meta.Facility, opts ...Option) (*Engine, error) {
	if facility == nil {
		return nil, errors.New("metadata facility is required")
	}
	e := &Engine{
		facility: facility,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.hooks == nil {
		e.hooks = hooks.NewBus()
	}
	return e, nil
}

// Hooks returns the engine's observation bus.
func (e *Engine) Hooks() *hooks.Bus {
	return e.hooks
}

// Options is the content of a configuration block.
type Options struct {
	// Mode is the detection policy. Nil selects policy.DefaultMode.
	Mode *policy.Mode
	// Namespace prefixes every key produced by the block. It is mandatory;
	// scanning with an empty namespace fails.
	Namespace string
}

// Block is a configured detection mode and namespace. Scans run through it.
type Block struct {
	engine    *Engine
	mode      policy.Mode
	namespace string
}

// Block opens a configuration block.
func (e *Engine) Block(opts Options) *Block {
	mode := policy.DefaultMode()
	if opts.Mode != nil {
		mode = *opts.Mode
	}
	return &Block{engine: e, mode: mode, namespace: opts.Namespace}
}

// Configure opens a block and runs fn with it.
func (e *Engine) Configure(opts Options, fn func(b *Block) error) error {
	return fn(e.Block(opts))
}

// Mode returns the block's detection policy.
func (b *Block) Mode() policy.Mode {
	return b.mode
}

// Namespace returns the block's namespace.
func (b *Block) Namespace() string {
	return b.namespace
}
