package mqtt

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorKind classifies a decode failure. All kinds are non-retryable: MQTT's
// framing layer has no resynchronization point, so a caller that receives a
// DecodeError should close the connection rather than attempt recovery.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	ErrInvalidHeader
	ErrInvalidRemainingLength
	ErrInvalidVarByteInt
	ErrInvalidString
	ErrInvalidQoS
	ErrInvalidPacketIdentifier
	ErrInvalidProtocol
	ErrInvalidConnectFlags
	ErrInvalidProperty
	ErrInvalidReasonCode
	ErrInvalidTopicName
	ErrInvalidTopicFilter
	ErrPacketTooLarge
	ErrTrailingBytes
	ErrUnexpectedEOF
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidHeader:
		return "InvalidHeader"
	case ErrInvalidRemainingLength:
		return "InvalidRemainingLength"
	case ErrInvalidVarByteInt:
		return "InvalidVarByteInt"
	case ErrInvalidString:
		return "InvalidString"
	case ErrInvalidQoS:
		return "InvalidQos"
	case ErrInvalidPacketIdentifier:
		return "InvalidPacketIdentifier"
	case ErrInvalidProtocol:
		return "InvalidProtocol"
	case ErrInvalidConnectFlags:
		return "InvalidConnectFlags"
	case ErrInvalidProperty:
		return "InvalidProperty"
	case ErrInvalidReasonCode:
		return "InvalidReasonCode"
	case ErrInvalidTopicName:
		return "InvalidTopicName"
	case ErrInvalidTopicFilter:
		return "InvalidTopicFilter"
	case ErrPacketTooLarge:
		return "PacketTooLarge"
	case ErrTrailingBytes:
		return "TrailingBytes"
	case ErrUnexpectedEOF:
		return "UnexpectedEof"
	default:
		return "Unknown"
	}
}

// DecodeError reports a malformed control packet. Offset is a byte offset
// into the original input where the problem was detected; it is assembled
// incrementally as the error propagates out of nested decoders, see
// withOffset.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mqtt: %s at offset %d: %s", e.Kind, e.Offset, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

func newDecodeError(kind ErrorKind, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, cause: errors.Newf(format, args...)}
}

// withOffset returns a copy of err with delta added to its Offset, when err
// is a *DecodeError. Other errors, notably *NeedMoreError, pass through
// unchanged. Callers that decode a sub-region of a larger buffer use this to
// report offsets relative to the whole packet rather than the sub-slice.
func withOffset(err error, delta int) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return &DecodeError{Kind: de.Kind, Offset: de.Offset + delta, cause: de.cause}
	}
	return err
}

// NeedMoreError signals that buf did not contain enough bytes to decode the
// next packet. Min is a lower bound on how many additional bytes the caller
// must append before calling Decode again; it is not a promise that Min
// bytes will suffice since the decoder may ask again once the header is
// available and the body length is known.
type NeedMoreError struct {
	Min int
}

func (e *NeedMoreError) Error() string {
	return fmt.Sprintf("mqtt: need at least %d more byte(s)", e.Min)
}

func needMore(min int) error { return &NeedMoreError{Min: min} }

// IsNeedMore reports whether err indicates the decoder requires more input
// rather than having rejected the input outright.
func IsNeedMore(err error) bool {
	var nm *NeedMoreError
	return errors.As(err, &nm)
}

// AsDecodeError extracts the *DecodeError carried by err, or nil if err
// isn't one (or wraps one).
func AsDecodeError(err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	return nil
}
