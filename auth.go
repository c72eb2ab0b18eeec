package mqtt

import "io"

// AuthPacket represents an MQTT v5.0 AUTH control packet, used for extended
// authentication exchanges (SCRAM, Kerberos, OAuth, and similar
// challenge/response mechanisms) between client and server.
type AuthPacket struct {
	ReasonCode ReasonCode
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *AuthPacket) Type() uint8 {
	return AUTH
}

// WriteTo writes the AUTH packet to the writer.
func (p *AuthPacket) WriteTo(w io.Writer) (int64, error) {
	includeTail := p.ReasonCode != ReasonSuccess || p.Properties != nil

	var propsBytes []byte
	variableHeaderLen := 0
	if includeTail {
		propsBytes = encodeProperties(p.Properties)
		variableHeaderLen = 1 + len(propsBytes)
	}

	header := &FixedHeader{PacketType: AUTH, Flags: 0, RemainingLength: variableHeaderLen}
	dst := header.appendBytes(make([]byte, 0, variableHeaderLen+5))
	if includeTail {
		dst = append(dst, byte(p.ReasonCode))
		dst = append(dst, propsBytes...)
	}

	n, err := w.Write(dst)
	return int64(n), err
}

// DecodeAuth decodes an AUTH packet body. Packet type 15 is reserved in
// v3.1/v3.1.1, so seeing one on an older connection is a malformed packet,
// not a caller mistake.
func DecodeAuth(buf []byte, version Version, opts DecodeOptions) (*AuthPacket, error) {
	if version < Version5 {
		return nil, newDecodeError(ErrInvalidHeader, 0, "AUTH packet is only valid for MQTT v5.0")
	}

	pkt := &AuthPacket{Version: version}

	if len(buf) == 0 {
		return pkt, nil
	}

	code := ReasonCode(buf[0])
	if !validReasonCode(AUTH, code) {
		return nil, newDecodeError(ErrInvalidReasonCode, 0, "reason code 0x%02x not valid for AUTH", code)
	}
	pkt.ReasonCode = code

	if len(buf) == 1 {
		return pkt, nil
	}

	props, n, err := decodeProperties(buf[1:], AUTH, opts)
	if err != nil {
		return nil, withOffset(err, 1)
	}
	if props == nil || props.Presence&PresAuthenticationMethod == 0 {
		return nil, newDecodeError(ErrInvalidProperty, 1, "AUTH must include an authentication method property")
	}
	pkt.Properties = props
	if 1+n != len(buf) {
		return nil, newDecodeError(ErrTrailingBytes, 1+n, "%d trailing byte(s) after AUTH properties", len(buf)-1-n)
	}

	return pkt, nil
}
