package mqtt

import (
	"strings"
	"unicode/utf8"
)

// MQTT specification limits (defaults when a caller does not override them).
const (
	// DefaultMaxTopicLength is the maximum length of an MQTT topic, bounded
	// by the 2-byte length prefix all MQTT strings share.
	DefaultMaxTopicLength = 65535

	// DefaultMaxPayloadSize is the maximum size of an MQTT message payload,
	// bounded by the largest Remaining Length a packet can declare.
	DefaultMaxPayloadSize = maxVarInt
)

// ValidateTopicName checks topic against the syntactic rules a PUBLISH
// Topic Name must follow (section 4.7.3): non-empty, no wildcard
// characters, no embedded NUL, valid UTF-8, and within maxLen bytes. Zero
// or negative maxLen falls back to DefaultMaxTopicLength.
func ValidateTopicName(topic string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxTopicLength
	}
	if topic == "" {
		return newDecodeError(ErrInvalidTopicName, 0, "topic name must not be empty")
	}
	if len(topic) > maxLen {
		return newDecodeError(ErrInvalidTopicName, 0, "topic name length %d exceeds maximum %d", len(topic), maxLen)
	}
	if strings.ContainsAny(topic, "+#") {
		return newDecodeError(ErrInvalidTopicName, 0, "topic name must not contain wildcard characters")
	}
	if strings.IndexByte(topic, 0) >= 0 {
		return newDecodeError(ErrInvalidTopicName, 0, "topic name must not contain a null byte")
	}
	if !utf8.ValidString(topic) {
		return newDecodeError(ErrInvalidTopicName, 0, "topic name is not valid UTF-8")
	}
	return nil
}

// ValidateTopicFilter checks filter against the syntactic rules a SUBSCRIBE
// or UNSUBSCRIBE Topic Filter must follow (section 4.7): non-empty, valid
// wildcard placement ('+' and '#' must each occupy an entire level, and '#'
// must be the last level), no embedded NUL, valid UTF-8, and within maxLen
// bytes. The $share/<group>/ prefix, if present, is not itself validated
// here; callers that care about shared subscriptions use ParseTopicFilter
// first and validate the remainder.
func ValidateTopicFilter(filter string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxTopicLength
	}
	if filter == "" {
		return newDecodeError(ErrInvalidTopicFilter, 0, "topic filter must not be empty")
	}
	if len(filter) > maxLen {
		return newDecodeError(ErrInvalidTopicFilter, 0, "topic filter length %d exceeds maximum %d", len(filter), maxLen)
	}
	if strings.IndexByte(filter, 0) >= 0 {
		return newDecodeError(ErrInvalidTopicFilter, 0, "topic filter must not contain a null byte")
	}
	if !utf8.ValidString(filter) {
		return newDecodeError(ErrInvalidTopicFilter, 0, "topic filter is not valid UTF-8")
	}

	levels := strings.Split(filter, "/")
	for i, level := range levels {
		if strings.Contains(level, "+") && level != "+" {
			return newDecodeError(ErrInvalidTopicFilter, 0, "single-level wildcard '+' must occupy an entire topic level")
		}
		if strings.Contains(level, "#") {
			if level != "#" {
				return newDecodeError(ErrInvalidTopicFilter, 0, "multi-level wildcard '#' must occupy an entire topic level")
			}
			if i != len(levels)-1 {
				return newDecodeError(ErrInvalidTopicFilter, 0, "multi-level wildcard '#' must be the last topic level")
			}
		}
	}

	return nil
}

// ParseTopicFilter splits a v5.0 shared-subscription filter of the form
// "$share/<group>/<filter>" (section 4.8.2) into its group name and
// underlying filter. shared reports whether the $share prefix was present
// AND introduced a well-formed group: non-empty and free of '+' and '#'
// (section 4.8.2 forbids a group name containing wildcard characters). The
// '/' separator already bounds the group to a single path segment, so it
// can never appear in candidate; the check stays for symmetry with section
// 4.8.2's wording rather than reachability. A malformed group - "$share//x",
// "$share/a+b/x" - is reported exactly like a missing prefix: shared is
// false, filter is raw unchanged, group is empty. Callers still run the
// returned filter through ValidateTopicFilter; this function only resolves
// the $share/<group>/ framing.
func ParseTopicFilter(raw string) (group string, filter string, shared bool) {
	const prefix = "$share/"
	if !strings.HasPrefix(raw, prefix) {
		return "", raw, false
	}
	rest := raw[len(prefix):]
	idx := strings.IndexByte(rest, '/')
	if idx < 0 {
		return "", raw, false
	}
	candidate := rest[:idx]
	if candidate == "" || strings.ContainsAny(candidate, "/+#") {
		return "", raw, false
	}
	return candidate, rest[idx+1:], true
}

// ValidatePayloadFormat checks payload against a PUBLISH packet's Payload
// Format Indicator property, when present: a value of 1 declares the
// payload to be UTF-8 text (section 3.3.2.3.2).
func ValidatePayloadFormat(payload []byte, props *Properties) error {
	if props == nil || props.Presence&PresPayloadFormatIndicator == 0 || props.PayloadFormatIndicator == 0 {
		return nil
	}
	if !utf8.Valid(payload) {
		return newDecodeError(ErrInvalidString, 0, "payload is not valid UTF-8 as declared by the payload format indicator")
	}
	return nil
}
