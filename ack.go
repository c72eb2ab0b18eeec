package mqtt

import "encoding/binary"

// encodeSimpleAck serializes the PUBACK/PUBREC/PUBREL/PUBCOMP wire shape: a
// 2-byte packet ID, then — for v5.0, and only when there is something to
// say — a reason code and a properties block. v3.1/v3.1.1 never carries
// more than the packet ID (section 3.4.2).
func encodeSimpleAck(dst []byte, packetType uint8, flags uint8, version Version, packetID uint16, reason ReasonCode, props *Properties) []byte {
	includeTail := version >= Version5 && (reason != ReasonSuccess || props != nil)

	variableHeaderLen := 2
	var propsBytes []byte
	if includeTail {
		propsBytes = encodeProperties(props)
		variableHeaderLen += 1 + len(propsBytes)
	}

	header := FixedHeader{PacketType: packetType, Flags: flags, RemainingLength: variableHeaderLen}
	dst = header.appendBytes(dst)
	dst = binary.BigEndian.AppendUint16(dst, packetID)
	if includeTail {
		dst = append(dst, byte(reason))
		dst = append(dst, propsBytes...)
	}
	return dst
}

// decodeSimpleAck parses the PUBACK/PUBREC/PUBREL/PUBCOMP wire shape. The
// reason code and properties are elided entirely when the packet carries
// Success and no properties (the v5.0 "nothing to report" short form); a
// v3.1/v3.1.1 packet never has them at all.
func decodeSimpleAck(buf []byte, packetType uint8, version Version, opts DecodeOptions) (packetID uint16, reason ReasonCode, props *Properties, err error) {
	if len(buf) < 2 {
		return 0, 0, nil, needMore(2 - len(buf))
	}
	packetID = binary.BigEndian.Uint16(buf[0:2])
	if packetID == 0 {
		return 0, 0, nil, newDecodeError(ErrInvalidPacketIdentifier, 0, "packet identifier must not be zero")
	}

	if version < Version5 {
		if len(buf) != 2 {
			return 0, 0, nil, newDecodeError(ErrTrailingBytes, 2, "%d trailing byte(s) after packet identifier", len(buf)-2)
		}
		return packetID, ReasonSuccess, nil, nil
	}

	if len(buf) == 2 {
		return packetID, ReasonSuccess, nil, nil
	}

	reason = ReasonCode(buf[2])
	if !validReasonCode(packetType, reason) {
		return 0, 0, nil, newDecodeError(ErrInvalidReasonCode, 2, "reason code 0x%02x not valid for %s", reason, PacketNames[packetType])
	}

	if len(buf) == 3 {
		return packetID, reason, nil, nil
	}

	props, n, err := decodeProperties(buf[3:], packetType, opts)
	if err != nil {
		return 0, 0, nil, withOffset(err, 3)
	}
	if 3+n != len(buf) {
		return 0, 0, nil, newDecodeError(ErrTrailingBytes, 3+n, "%d trailing byte(s) after properties", len(buf)-3-n)
	}
	return packetID, reason, props, nil
}
