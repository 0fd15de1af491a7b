package tinyjson

import "log/slog"

// Config controls scratch buffer sizing and output formatting of a Codec.
type Config struct {
	// InitialStackSize is the base capacity, in bytes, of the parse scratch
	// stack used to assemble strings.
	InitialStackSize int `yaml:"initial_stack_size"`

	// ElementStackSize is the base capacity, in elements, of the stacks that
	// buffer array elements and object members while they are parsed.
	ElementStackSize int `yaml:"element_stack_size"`

	// StringifyStackSize is the base capacity of the output buffer.
	StringifyStackSize int `yaml:"stringify_stack_size"`

	// RawStrings writes string and key bytes verbatim instead of escaping
	// them. Output is not valid JSON when a string holds a quote, a
	// backslash or a control byte.
	RawStrings bool `yaml:"raw_strings"`

	// NullTerminate stores a NUL byte just past the end of Stringify output.
	NullTerminate bool `yaml:"null_terminate"`

	// Logger receives debug records for failed parses. Nil means slog.Default().
	Logger *slog.Logger `yaml:"-"`

	// Metrics, when set, records parse and stringify counters.
	Metrics *Metrics `yaml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		InitialStackSize:   DefaultInitialStackSize,
		ElementStackSize:   DefaultElementStackSize,
		StringifyStackSize: DefaultStringifyStackSize,
		RawStrings:         false,
		NullTerminate:      false,
	}
}

// ValidateConfig validates configuration values and applies defaults for
// zero sizes
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	if config.InitialStackSize < 0 {
		return newOperationError("validate_config", "InitialStackSize cannot be negative", ErrInvalidConfig)
	}
	if config.ElementStackSize < 0 {
		return newOperationError("validate_config", "ElementStackSize cannot be negative", ErrInvalidConfig)
	}
	if config.StringifyStackSize < 0 {
		return newOperationError("validate_config", "StringifyStackSize cannot be negative", ErrInvalidConfig)
	}

	if config.InitialStackSize == 0 {
		config.InitialStackSize = DefaultInitialStackSize
	}
	if config.ElementStackSize == 0 {
		config.ElementStackSize = DefaultElementStackSize
	}
	if config.StringifyStackSize == 0 {
		config.StringifyStackSize = DefaultStringifyStackSize
	}

	return nil
}

// Clone returns a shallow copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
