package mqtt

import (
	"encoding/binary"
	"io"
)

// UnsubackPacket represents an MQTT UNSUBACK control packet.
type UnsubackPacket struct {
	PacketID uint16

	// MQTT v5.0 fields; v3.1/v3.1.1 UNSUBACK carries no payload.
	ReasonCodes []ReasonCode
	Properties  *Properties
	Version     Version
}

// Type returns the packet type.
func (p *UnsubackPacket) Type() uint8 {
	return UNSUBACK
}

// WriteTo writes the UNSUBACK packet to the writer.
func (p *UnsubackPacket) WriteTo(w io.Writer) (int64, error) {
	var propsBytes []byte
	var codes []byte
	if p.Version >= 5 {
		propsBytes = encodeProperties(p.Properties)
		codes = make([]byte, len(p.ReasonCodes))
		for i, c := range p.ReasonCodes {
			codes[i] = byte(c)
		}
	}

	remainingLength := 2 + len(propsBytes) + len(codes)
	header := &FixedHeader{PacketType: UNSUBACK, Flags: 0, RemainingLength: remainingLength}
	dst := header.appendBytes(make([]byte, 0, remainingLength+5))
	dst = binary.BigEndian.AppendUint16(dst, p.PacketID)
	dst = append(dst, propsBytes...)
	dst = append(dst, codes...)

	n, err := w.Write(dst)
	return int64(n), err
}

// DecodeUnsuback decodes an UNSUBACK packet body.
func DecodeUnsuback(buf []byte, version Version, opts DecodeOptions) (*UnsubackPacket, error) {
	if len(buf) < 2 {
		return nil, needMore(2 - len(buf))
	}

	pkt := &UnsubackPacket{Version: version}
	offset := 0

	pkt.PacketID = binary.BigEndian.Uint16(buf[offset : offset+2])
	if pkt.PacketID == 0 {
		return nil, newDecodeError(ErrInvalidPacketIdentifier, 0, "packet identifier must not be zero")
	}
	offset += 2

	if version < Version5 {
		if offset != len(buf) {
			return nil, newDecodeError(ErrTrailingBytes, offset, "%d trailing byte(s) after UNSUBACK packet identifier", len(buf)-offset)
		}
		return pkt, nil
	}

	props, n, err := decodeProperties(buf[offset:], UNSUBACK, opts)
	if err != nil {
		return nil, withOffset(err, offset)
	}
	pkt.Properties = props
	offset += n

	if offset == len(buf) {
		return nil, newDecodeError(ErrInvalidHeader, 0, "UNSUBACK must contain at least one reason code")
	}

	for i, b := range buf[offset:] {
		code := ReasonCode(b)
		if !validReasonCode(UNSUBACK, code) {
			return nil, newDecodeError(ErrInvalidReasonCode, offset+i, "reason code 0x%02x not valid for UNSUBACK", code)
		}
		pkt.ReasonCodes = append(pkt.ReasonCodes, code)
	}

	return pkt, nil
}
