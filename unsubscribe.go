package mqtt

import (
	"encoding/binary"
	"io"
)

// UnsubscribePacket represents an MQTT UNSUBSCRIBE control packet.
type UnsubscribePacket struct {
	PacketID uint16
	Topics   []string

	// MQTT v5.0 fields
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *UnsubscribePacket) Type() uint8 {
	return UNSUBSCRIBE
}

// WriteTo writes the UNSUBSCRIBE packet to the writer.
func (p *UnsubscribePacket) WriteTo(w io.Writer) (int64, error) {
	var propsBytes []byte
	if p.Version >= 5 {
		propsBytes = encodeProperties(p.Properties)
	}

	var payloadLen int
	topicBytesList := make([][]byte, len(p.Topics))
	for i, topic := range p.Topics {
		tb := encodeString(topic)
		topicBytesList[i] = tb
		payloadLen += len(tb)
	}

	remainingLength := 2 + len(propsBytes) + payloadLen
	header := &FixedHeader{PacketType: UNSUBSCRIBE, Flags: 0x02, RemainingLength: remainingLength}
	dst := header.appendBytes(make([]byte, 0, remainingLength+5))
	dst = binary.BigEndian.AppendUint16(dst, p.PacketID)
	dst = append(dst, propsBytes...)
	for _, tb := range topicBytesList {
		dst = append(dst, tb...)
	}

	n, err := w.Write(dst)
	return int64(n), err
}

// DecodeUnsubscribe decodes an UNSUBSCRIBE packet body.
func DecodeUnsubscribe(buf []byte, version Version, opts DecodeOptions) (*UnsubscribePacket, error) {
	if len(buf) < 2 {
		return nil, needMore(2 - len(buf))
	}

	pkt := &UnsubscribePacket{Version: version}
	offset := 0

	pkt.PacketID = binary.BigEndian.Uint16(buf[offset : offset+2])
	if pkt.PacketID == 0 {
		return nil, newDecodeError(ErrInvalidPacketIdentifier, 0, "packet identifier must not be zero")
	}
	offset += 2

	if version >= Version5 {
		props, n, err := decodeProperties(buf[offset:], UNSUBSCRIBE, opts)
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.Properties = props
		offset += n
	}

	for offset < len(buf) {
		start := offset
		topic, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, withOffset(err, offset)
		}
		offset += n

		if err := ValidateTopicFilter(topic, 0); err != nil {
			return nil, withOffset(err, start)
		}

		pkt.Topics = append(pkt.Topics, topic)
	}

	if len(pkt.Topics) == 0 {
		return nil, newDecodeError(ErrInvalidHeader, 0, "UNSUBSCRIBE must contain at least one topic filter")
	}

	return pkt, nil
}
