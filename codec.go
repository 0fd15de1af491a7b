package tinyjson

import (
	"fmt"
	"log/slog"
	"sync"
)

// Codec parses JSON text into Value trees and renders trees back to text.
//
// A Codec is safe for concurrent use: every call takes a private parse
// context from the pool and returns it when done.
type Codec struct {
	config   *Config
	logger   *slog.Logger
	metrics  *Metrics
	contexts sync.Pool
}

// New creates a Codec with the given configuration, or DefaultConfig when
// none is passed. It panics on an invalid configuration.
func New(config ...*Config) *Codec {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	} else {
		cfg = DefaultConfig()
	}

	c, err := NewWithConfig(cfg)
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}
	return c
}

// NewWithConfig creates a Codec, returning an error for an invalid
// configuration. The configuration is copied.
func NewWithConfig(config *Config) (*Codec, error) {
	cfg := config.Clone()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	c := &Codec{
		config:  cfg,
		metrics: cfg.Metrics,
	}
	c.SetLogger(cfg.Logger)
	c.contexts.New = func() any {
		return newParseContext(c.config)
	}
	return c, nil
}

// SetLogger sets the structured logger used for debug records. Nil selects
// slog.Default().
func (c *Codec) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c.logger = logger.With("component", componentName)
}

// Config returns a copy of the codec configuration.
func (c *Codec) Config() *Config {
	return c.config.Clone()
}

func (c *Codec) getContext() *parseContext {
	return c.contexts.Get().(*parseContext)
}

// putContext returns ctx to the pool unless its stacks grew past the pool
// size limits.
func (c *Codec) putContext(ctx *parseContext) {
	ctx.json = ""
	if ctx.bytes.Cap() > MaxPooledStackSize || ctx.values.Cap() > MaxPooledElementStackSize ||
		ctx.members.Cap() > MaxPooledElementStackSize {
		return
	}
	c.contexts.Put(ctx)
}

// Parse parses text as a single JSON value.
func (c *Codec) Parse(text string) (Value, error) {
	var v Value
	if err := c.parseInto(text, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// ParseBytes parses data as a single JSON value.
func (c *Codec) ParseBytes(data []byte) (Value, error) {
	return c.Parse(string(data))
}

// Unmarshal releases v and parses data into it. On failure v is left null.
func (c *Codec) Unmarshal(data []byte, v *Value) error {
	if v == nil {
		return newOperationError("unmarshal", "destination value cannot be nil", ErrNilValue)
	}
	v.Release()
	return c.parseInto(string(data), v)
}

// Valid reports whether text is a single well formed JSON value.
func (c *Codec) Valid(text string) bool {
	var v Value
	err := c.parseInto(text, &v)
	v.Release()
	return err == nil
}

func (c *Codec) parseInto(text string, v *Value) error {
	ctx := c.getContext()
	defer c.putContext(ctx)

	var root Value
	code := ctx.parse(text, &root)
	c.metrics.recordParse(code, len(text))
	if code != CodeOK {
		c.logParseFailure(text, code, ctx.errPos)
		return newParseError(code, ctx.errPos)
	}
	*v = root
	return nil
}

// Stringify renders v as canonical JSON text. It never fails.
func (c *Codec) Stringify(v *Value) []byte {
	out := stringify(v, c.config.StringifyStackSize, c.config.RawStrings, c.config.NullTerminate)
	c.metrics.recordStringify(len(out))
	c.logStringify(v, len(out))
	return out
}

// marshal renders v for encoding/json, which requires valid output, so
// strings are always escaped.
func (c *Codec) marshal(v *Value) []byte {
	out := stringify(v, c.config.StringifyStackSize, false, false)
	c.metrics.recordStringify(len(out))
	return out
}
