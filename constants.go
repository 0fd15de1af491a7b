package tinyjson

const (
	// Scratch stack sizes
	DefaultInitialStackSize   = 256
	DefaultElementStackSize   = 16
	DefaultStringifyStackSize = 256

	// Parse contexts whose stacks grew past these sizes are not pooled
	MaxPooledStackSize        = 65536
	MaxPooledElementStackSize = 4096

	// NumberReserveSize is the room reserved for one rendered number before
	// the unused tail is trimmed. "%.17g" never needs more than 24 bytes.
	NumberReserveSize = 32

	// Logging
	MaxLoggedSnippet = 32
	componentName    = "tinyjson"
)
