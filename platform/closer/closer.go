package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown functions in reverse order of registration.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: noopLogger{}}
}

func SetLogger(l Logger)                                   { globalCloser.SetLogger(l) }
func Add(fn func(context.Context) error)                   { globalCloser.Add(fn) }
func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                   { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) Add(fn func(context.Context) error) {
	c.AddNamed("func", fn)
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is idempotent: only the first call runs the functions.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		errs := make([]error, 0)
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]

			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "closed", zap.String("name", f.name))
		}

		result = errors.Join(errs...)
	})

	return result
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
