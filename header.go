package mqtt

import "io"

// FixedHeader represents the fixed header present in all MQTT control packets.
// Format: [PacketType + Flags (1 byte)][Remaining Length (1-4 bytes)]
type FixedHeader struct {
	PacketType      uint8
	Flags           uint8
	RemainingLength int
}

// WriteTo writes the fixed header to the writer.
func (h *FixedHeader) WriteTo(w io.Writer) (int64, error) {
	buf := h.appendBytes(make([]byte, 0, 5))

	if bw, ok := w.(io.ByteWriter); ok && len(buf) <= 5 {
		for i, b := range buf {
			if err := bw.WriteByte(b); err != nil {
				return int64(i), err
			}
		}
		return int64(len(buf)), nil
	}

	n, err := w.Write(buf)
	return int64(n), err
}

// appendBytes appends the wire encoding of the fixed header to dst.
func (h *FixedHeader) appendBytes(dst []byte) []byte {
	dst = append(dst, (h.PacketType<<4)|(h.Flags&0x0F))
	return appendVarInt(dst, h.RemainingLength)
}

// reservedFlags gives the fixed, spec-mandated flag nibble for packet types
// that don't carry per-message flags (MQTT v5.0 section 2.1.3). PUBLISH
// carries DUP/QoS/RETAIN in its flags and is validated separately by the
// caller, which knows the QoS rules; it is absent from this table.
var reservedFlags = map[uint8]uint8{
	CONNECT:     0x00,
	CONNACK:     0x00,
	PUBACK:      0x00,
	PUBREC:      0x00,
	PUBREL:      0x02,
	PUBCOMP:     0x00,
	SUBSCRIBE:   0x02,
	SUBACK:      0x00,
	UNSUBSCRIBE: 0x02,
	UNSUBACK:    0x00,
	PINGREQ:     0x00,
	PINGRESP:    0x00,
	DISCONNECT:  0x00,
	AUTH:        0x00,
}

// validateFlags checks h.Flags against the reserved-bit rules for h.PacketType.
// PUBLISH is exempt: its flags encode DUP/QoS/RETAIN and are validated by
// the PUBLISH decoder, which also knows whether QoS 3 (invalid) was used.
func (h *FixedHeader) validateFlags() error {
	if h.PacketType == PUBLISH {
		return nil
	}
	want, ok := reservedFlags[h.PacketType]
	if !ok {
		return newDecodeError(ErrInvalidHeader, 0, "unknown packet type %d", h.PacketType)
	}
	if h.Flags != want {
		return newDecodeError(ErrInvalidHeader, 0,
			"packet type %s requires reserved flags 0x%X, got 0x%X", PacketNames[h.PacketType], want, h.Flags)
	}
	return nil
}

// decodeFixedHeader decodes a fixed header from the front of buf without
// consuming it on a NeedMore result, the same contract as the rest of the
// incremental decoder (see decode.go). On success it returns the header, the
// number of bytes the header itself occupied, and the total packet length
// (header + remaining length) so the caller knows how much of buf to hand to
// the body decoder.
func decodeFixedHeader(buf []byte) (h *FixedHeader, headerLen int, totalLen int, err error) {
	if len(buf) < 1 {
		return nil, 0, 0, needMore(1)
	}

	firstByte := buf[0]
	remainingLength, n, err := decodeVarInt(buf[1:])
	if err != nil {
		if IsNeedMore(err) {
			return nil, 0, 0, err
		}
		return nil, 0, 0, withOffset(reclassify(err, ErrInvalidRemainingLength), 1)
	}

	h = &FixedHeader{
		PacketType:      firstByte >> 4,
		Flags:           firstByte & 0x0F,
		RemainingLength: remainingLength,
	}
	if err := h.validateFlags(); err != nil {
		return nil, 0, 0, err
	}
	if remainingLength > maxVarInt {
		return nil, 0, 0, newDecodeError(ErrPacketTooLarge, 0, "remaining length %d exceeds protocol maximum", remainingLength)
	}

	headerLen = 1 + n
	return h, headerLen, headerLen + remainingLength, nil
}
