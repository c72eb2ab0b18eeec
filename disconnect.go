package mqtt

import "io"

// DisconnectPacket represents an MQTT DISCONNECT control packet.
type DisconnectPacket struct {
	// MQTT v5.0 fields; v3.1/v3.1.1 DISCONNECT carries no payload at all.
	ReasonCode ReasonCode
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *DisconnectPacket) Type() uint8 {
	return DISCONNECT
}

// WriteTo writes the DISCONNECT packet to the writer.
func (p *DisconnectPacket) WriteTo(w io.Writer) (int64, error) {
	includeTail := p.Version >= 5 && (p.ReasonCode != ReasonSuccess || p.Properties != nil)

	var propsBytes []byte
	variableHeaderLen := 0
	if includeTail {
		propsBytes = encodeProperties(p.Properties)
		variableHeaderLen = 1 + len(propsBytes)
	}

	header := &FixedHeader{PacketType: DISCONNECT, Flags: 0, RemainingLength: variableHeaderLen}
	dst := header.appendBytes(make([]byte, 0, variableHeaderLen+5))
	if includeTail {
		dst = append(dst, byte(p.ReasonCode))
		dst = append(dst, propsBytes...)
	}

	n, err := w.Write(dst)
	return int64(n), err
}

// DecodeDisconnect decodes a DISCONNECT packet body.
func DecodeDisconnect(buf []byte, version Version, opts DecodeOptions) (*DisconnectPacket, error) {
	pkt := &DisconnectPacket{Version: version}

	if version < Version5 {
		if len(buf) != 0 {
			return nil, newDecodeError(ErrTrailingBytes, 0, "%d trailing byte(s) in DISCONNECT, which must have no payload", len(buf))
		}
		return pkt, nil
	}

	if len(buf) == 0 {
		return pkt, nil
	}

	code := ReasonCode(buf[0])
	if !validReasonCode(DISCONNECT, code) {
		return nil, newDecodeError(ErrInvalidReasonCode, 0, "reason code 0x%02x not valid for DISCONNECT", code)
	}
	pkt.ReasonCode = code

	if len(buf) == 1 {
		return pkt, nil
	}

	props, n, err := decodeProperties(buf[1:], DISCONNECT, opts)
	if err != nil {
		return nil, withOffset(err, 1)
	}
	pkt.Properties = props
	if 1+n != len(buf) {
		return nil, newDecodeError(ErrTrailingBytes, 1+n, "%d trailing byte(s) after DISCONNECT properties", len(buf)-1-n)
	}

	return pkt, nil
}
