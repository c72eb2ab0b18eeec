package mqtt

import (
	"encoding/binary"
	"io"
)

// PublishPacket represents an MQTT PUBLISH control packet.
type PublishPacket struct {
	// Fixed header flags
	Dup    bool
	QoS    uint8
	Retain bool

	// Variable header
	Topic    string
	PacketID uint16 // only present if QoS > 0

	// Payload
	Payload []byte

	// MQTT v5.0 fields
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *PublishPacket) Type() uint8 {
	return PUBLISH
}

// Encode serializes the PUBLISH packet into dst.
func (p *PublishPacket) Encode(dst []byte) ([]byte, error) {
	var propertyLen int
	if p.Version >= 5 {
		var propBuf [128]byte
		propertyLen = len(appendProperties(propBuf[:0], p.Properties))
	}

	variableHeaderLen := 2 + len(p.Topic)
	if p.QoS > 0 {
		variableHeaderLen += 2
	}
	if p.Version >= 5 {
		variableHeaderLen += propertyLen
	}

	remainingLength := variableHeaderLen + len(p.Payload)

	var flags uint8
	if p.Dup {
		flags |= 0x08
	}
	flags |= (p.QoS & 0x03) << 1
	if p.Retain {
		flags |= 0x01
	}

	header := FixedHeader{PacketType: PUBLISH, Flags: flags, RemainingLength: remainingLength}
	dst = header.appendBytes(dst)
	dst = appendString(dst, p.Topic)
	if p.QoS > 0 {
		dst = binary.BigEndian.AppendUint16(dst, p.PacketID)
	}
	if p.Version >= 5 {
		dst = appendProperties(dst, p.Properties)
	}
	dst = append(dst, p.Payload...)

	return dst, nil
}

// WriteTo writes the PUBLISH packet to the writer.
func (p *PublishPacket) WriteTo(w io.Writer) (int64, error) {
	bufPtr := GetBuffer(4096)
	defer PutBuffer(bufPtr)

	data, err := p.Encode((*bufPtr)[:0])
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// DecodePublish decodes a PUBLISH packet body. fixedHeader carries the
// already-parsed DUP/QoS/RETAIN flags.
func DecodePublish(buf []byte, fixedHeader *FixedHeader, version Version, opts DecodeOptions) (*PublishPacket, error) {
	pkt := &PublishPacket{Version: version}

	pkt.Dup = (fixedHeader.Flags & 0x08) != 0
	pkt.QoS = (fixedHeader.Flags >> 1) & 0x03
	pkt.Retain = (fixedHeader.Flags & 0x01) != 0

	if pkt.QoS == 3 {
		return nil, newDecodeError(ErrInvalidQoS, 0, "QoS 3 is not a valid QoS level")
	}
	if pkt.QoS == 0 && pkt.Dup {
		return nil, newDecodeError(ErrInvalidHeader, 0, "DUP must not be set on a QoS 0 PUBLISH")
	}

	offset := 0

	topic, n, err := decodeString(buf[offset:])
	if err != nil {
		return nil, withOffset(err, offset)
	}
	pkt.Topic = topic
	offset += n

	// Topic alias (v5.0 property TopicAlias) lets Topic be empty; an empty,
	// non-aliased topic is invalid and is caught once properties, which may
	// carry that alias, have been parsed below.

	if pkt.QoS > 0 {
		if offset+2 > len(buf) {
			return nil, newDecodeError(ErrUnexpectedEOF, offset, "truncated packet identifier")
		}
		pkt.PacketID = binary.BigEndian.Uint16(buf[offset : offset+2])
		if pkt.PacketID == 0 {
			return nil, newDecodeError(ErrInvalidPacketIdentifier, offset, "packet identifier must not be zero")
		}
		offset += 2
	}

	if version >= Version5 {
		props, nProps, err := decodeProperties(buf[offset:], PUBLISH, opts)
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.Properties = props
		offset += nProps
	}

	if topic == "" && (pkt.Properties == nil || pkt.Properties.Presence&PresTopicAlias == 0) {
		return nil, newDecodeError(ErrInvalidTopicName, 0, "topic name must not be empty without a topic alias")
	}
	if err := ValidateTopicName(topic, 0); topic != "" && err != nil {
		return nil, err
	}

	payload := buf[offset:]
	if opts.BorrowPayloads {
		pkt.Payload = payload
	} else {
		pkt.Payload = append([]byte(nil), payload...)
	}

	if err := ValidatePayloadFormat(payload, pkt.Properties); err != nil {
		return nil, err
	}

	return pkt, nil
}
