package mqtt

import (
	"encoding/binary"
	"io"
)

// SubackPacket represents an MQTT SUBACK control packet.
type SubackPacket struct {
	PacketID uint16

	// ReturnCodes holds the v3.1/v3.1.1 per-topic return codes (SubackQoS0,
	// ...); ReasonCodes holds the v5.0 per-topic reason codes. Only one is
	// populated, depending on the version the packet was decoded with.
	ReturnCodes []uint8
	ReasonCodes []ReasonCode

	// MQTT v5.0 fields
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *SubackPacket) Type() uint8 {
	return SUBACK
}

// WriteTo writes the SUBACK packet to the writer.
func (p *SubackPacket) WriteTo(w io.Writer) (int64, error) {
	var propsBytes []byte
	if p.Version >= 5 {
		propsBytes = encodeProperties(p.Properties)
	}

	codes := p.ReturnCodes
	if p.Version >= 5 {
		codes = make([]uint8, len(p.ReasonCodes))
		for i, c := range p.ReasonCodes {
			codes[i] = byte(c)
		}
	}

	remainingLength := 2 + len(propsBytes) + len(codes)
	header := &FixedHeader{PacketType: SUBACK, Flags: 0, RemainingLength: remainingLength}
	dst := header.appendBytes(make([]byte, 0, remainingLength+5))
	dst = binary.BigEndian.AppendUint16(dst, p.PacketID)
	dst = append(dst, propsBytes...)
	dst = append(dst, codes...)

	n, err := w.Write(dst)
	return int64(n), err
}

// DecodeSuback decodes a SUBACK packet body.
func DecodeSuback(buf []byte, version Version, opts DecodeOptions) (*SubackPacket, error) {
	if len(buf) < 2 {
		return nil, needMore(2 - len(buf))
	}

	pkt := &SubackPacket{Version: version}
	offset := 0

	pkt.PacketID = binary.BigEndian.Uint16(buf[offset : offset+2])
	if pkt.PacketID == 0 {
		return nil, newDecodeError(ErrInvalidPacketIdentifier, 0, "packet identifier must not be zero")
	}
	offset += 2

	if version >= Version5 {
		props, n, err := decodeProperties(buf[offset:], SUBACK, opts)
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.Properties = props
		offset += n
	}

	if offset == len(buf) {
		return nil, newDecodeError(ErrInvalidHeader, 0, "SUBACK must contain at least one return code")
	}

	for i, b := range buf[offset:] {
		if version >= Version5 {
			code := ReasonCode(b)
			if !validReasonCode(SUBACK, code) {
				return nil, newDecodeError(ErrInvalidReasonCode, offset+i, "reason code 0x%02x not valid for SUBACK", code)
			}
			pkt.ReasonCodes = append(pkt.ReasonCodes, code)
			continue
		}
		if b != SubackQoS0 && b != SubackQoS1 && b != SubackQoS2 && b != SubackFailure {
			return nil, newDecodeError(ErrInvalidHeader, offset+i, "unknown SUBACK return code 0x%02x", b)
		}
		pkt.ReturnCodes = append(pkt.ReturnCodes, b)
	}

	return pkt, nil
}
