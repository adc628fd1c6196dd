package paillier

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel failure kinds, one per spec §7 error tag. Call sites wrap these
// with errors.Wrap/Wrapf to attach context; compare with errors.Is against
// the sentinel, or errors.Cause to recover it.
var (
	// ErrEncodeOverflow is returned when a value to encode falls outside
	// [minSignificand, maxSignificand], is NaN/±Inf, or is negative in an
	// unsigned context.
	ErrEncodeOverflow = errors.New("paillier: value does not fit in this encoding context")

	// ErrDecodeOverflow is returned when an encoded value is outside the
	// valid union of significand ranges, or a decoded value exceeds the
	// limits of the requested target type.
	ErrDecodeOverflow = errors.New("paillier: encoded value cannot be decoded to the requested type")

	// ErrContextMismatch is returned when a binary operation is attempted
	// on operands with unequal encoding contexts.
	ErrContextMismatch = errors.New("paillier: operands have different encoding contexts")

	// ErrKeyMismatch is returned when a decryption is attempted with a
	// private key whose public key differs from the ciphertext's.
	ErrKeyMismatch = errors.New("paillier: ciphertext was not encrypted under this key")

	// ErrInvalidArgument covers malformed, out-of-range caller-supplied
	// arguments: non-positive-multiple-of-8 key size, non-positive base,
	// out-of-range precision, or rescaling to a higher exponent.
	ErrInvalidArgument = errors.New("paillier: invalid argument")

	// ErrInvalidCiphertext is returned when a ciphertext value is negative
	// or not smaller than n².
	ErrInvalidCiphertext = errors.New("paillier: ciphertext is not in [0, n^2)")
)

// invalidArgumentf wraps ErrInvalidArgument with a formatted detail message.
func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrap(ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// encodeOverflowf wraps ErrEncodeOverflow with a formatted detail message.
func encodeOverflowf(format string, args ...interface{}) error {
	return errors.Wrap(ErrEncodeOverflow, fmt.Sprintf(format, args...))
}

// decodeOverflowf wraps ErrDecodeOverflow with a formatted detail message.
func decodeOverflowf(format string, args ...interface{}) error {
	return errors.Wrap(ErrDecodeOverflow, fmt.Sprintf(format, args...))
}
