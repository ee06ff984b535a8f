package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registry faults. These indicate programmer errors and are raised as panics.
const (
	// ErrCodeTypeMismatch indicates a stored or handler-supplied value does not
	// have the value type of the key it was read through.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidKey indicates a key or override was defined without a provider.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"
	// ErrCodeUnboundInjection indicates a read through a zero Injection.
	ErrCodeUnboundInjection ErrorCode = "UNBOUND_INJECTION"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Configuration errors
const (
	// ErrCodeConfigLoad indicates configuration sources could not be read.
	ErrCodeConfigLoad ErrorCode = "CONFIG_LOAD_FAILED"
	// ErrCodeConfigDecode indicates configuration could not be decoded into the target.
	ErrCodeConfigDecode ErrorCode = "CONFIG_DECODE_FAILED"
)

var faultCodes = map[ErrorCode]bool{
	ErrCodeTypeMismatch:     true,
	ErrCodeInvalidKey:       true,
	ErrCodeUnboundInjection: true,
}

// IsFaultCode reports whether the code denotes a programmer error that is
// raised as a panic rather than returned.
func IsFaultCode(code ErrorCode) bool {
	return faultCodes[code]
}
