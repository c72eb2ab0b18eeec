package mqtt

import "io"

// ConnectPacket represents an MQTT CONNECT control packet.
type ConnectPacket struct {
	// Protocol name ("MQIsdp" for v3.1, "MQTT" for v3.1.1/v5.0)
	ProtocolName string

	// Protocol level (3, 4 or 5)
	ProtocolLevel uint8

	// Connect flags
	CleanSession bool
	WillFlag     bool
	WillQoS      uint8
	WillRetain   bool
	PasswordFlag bool
	UsernameFlag bool

	// Keep alive timer in seconds
	KeepAlive uint16

	// Payload
	ClientID string

	// Will fields (only used if WillFlag is true)
	WillTopic      string
	WillMessage    []byte
	WillProperties *Properties // MQTT v5.0

	// Credentials (only used if respective flags are true)
	Username string
	Password string

	// MQTT v5.0 fields
	Properties *Properties
}

// Type returns the packet type.
func (p *ConnectPacket) Type() uint8 {
	return CONNECT
}

// protocolNameForVersion is the wire protocol name each version requires.
func protocolNameForVersion(v Version) string {
	if v == Version31 {
		return "MQIsdp"
	}
	return "MQTT"
}

// WriteTo writes the CONNECT packet to the writer.
func (p *ConnectPacket) WriteTo(w io.Writer) (int64, error) {
	var total int64

	protocolNameBytes := encodeString(p.ProtocolName)

	var connectFlags uint8
	if p.CleanSession {
		connectFlags |= 0x02
	}
	if p.WillFlag {
		connectFlags |= 0x04
		connectFlags |= (p.WillQoS & 0x03) << 3
		if p.WillRetain {
			connectFlags |= 0x20
		}
	}
	if p.PasswordFlag {
		connectFlags |= 0x40
	}
	if p.UsernameFlag {
		connectFlags |= 0x80
	}

	var propsBytes []byte
	if p.ProtocolLevel >= 5 {
		propsBytes = encodeProperties(p.Properties)
	}

	variableHeaderLen := len(protocolNameBytes) + 1 + 1 + 2 + len(propsBytes)

	clientIDBytes := encodeString(p.ClientID)
	payloadLen := len(clientIDBytes)

	var willPropsBytes, willTopicBytes, willMsgBytes []byte
	if p.WillFlag {
		if p.ProtocolLevel >= 5 {
			willPropsBytes = encodeProperties(p.WillProperties)
			payloadLen += len(willPropsBytes)
		}
		willTopicBytes = encodeString(p.WillTopic)
		willMsgBytes = encodeBinary(p.WillMessage)
		payloadLen += len(willTopicBytes) + len(willMsgBytes)
	}

	var usernameBytes, passwordBytes []byte
	if p.UsernameFlag {
		usernameBytes = encodeString(p.Username)
		payloadLen += len(usernameBytes)
	}
	if p.PasswordFlag {
		passwordBytes = encodeString(p.Password)
		payloadLen += len(passwordBytes)
	}

	header := &FixedHeader{PacketType: CONNECT, Flags: 0, RemainingLength: variableHeaderLen + payloadLen}
	hN, err := header.WriteTo(w)
	total += hN
	if err != nil {
		return total, err
	}

	writes := [][]byte{protocolNameBytes, {p.ProtocolLevel, connectFlags}}
	writes = append(writes, []byte{byte(p.KeepAlive >> 8), byte(p.KeepAlive)})
	if p.ProtocolLevel >= 5 {
		writes = append(writes, propsBytes)
	}
	writes = append(writes, clientIDBytes)
	if p.WillFlag {
		if p.ProtocolLevel >= 5 {
			writes = append(writes, willPropsBytes)
		}
		writes = append(writes, willTopicBytes, willMsgBytes)
	}
	if p.UsernameFlag {
		writes = append(writes, usernameBytes)
	}
	if p.PasswordFlag {
		writes = append(writes, passwordBytes)
	}

	for _, b := range writes {
		n, err := w.Write(b)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// DecodeConnect decodes a CONNECT packet body.
func DecodeConnect(buf []byte, version Version, opts DecodeOptions) (*ConnectPacket, error) {
	if len(buf) < 10 {
		return nil, needMore(10 - len(buf))
	}

	pkt := &ConnectPacket{}
	offset := 0

	protocolName, n, err := decodeString(buf[offset:])
	if err != nil {
		return nil, withOffset(err, offset)
	}
	pkt.ProtocolName = protocolName
	offset += n

	if protocolName != protocolNameForVersion(version) {
		return nil, newDecodeError(ErrInvalidProtocol, 0, "unexpected protocol name %q", protocolName)
	}

	pkt.ProtocolLevel = buf[offset]
	offset++
	if pkt.ProtocolLevel != uint8(version) {
		return nil, newDecodeError(ErrInvalidProtocol, offset-1, "protocol level %d does not match requested version %d", pkt.ProtocolLevel, version)
	}

	connectFlags := buf[offset]
	offset++
	if connectFlags&0x01 != 0 {
		return nil, newDecodeError(ErrInvalidConnectFlags, offset-1, "reserved connect flag bit 0 must be zero")
	}

	pkt.CleanSession = (connectFlags & 0x02) != 0
	pkt.WillFlag = (connectFlags & 0x04) != 0
	pkt.WillQoS = (connectFlags >> 3) & 0x03
	pkt.WillRetain = (connectFlags & 0x20) != 0
	pkt.PasswordFlag = (connectFlags & 0x40) != 0
	pkt.UsernameFlag = (connectFlags & 0x80) != 0

	if !pkt.WillFlag {
		if pkt.WillQoS != 0 {
			return nil, newDecodeError(ErrInvalidConnectFlags, offset-1, "will QoS must be zero when will flag is clear")
		}
		if pkt.WillRetain {
			return nil, newDecodeError(ErrInvalidConnectFlags, offset-1, "will retain must be zero when will flag is clear")
		}
	}
	if pkt.WillQoS == 3 {
		return nil, newDecodeError(ErrInvalidQoS, offset-1, "will QoS 3 is not a valid QoS level")
	}
	if version < Version5 && !pkt.UsernameFlag && pkt.PasswordFlag {
		return nil, newDecodeError(ErrInvalidConnectFlags, offset-1, "password flag set without username flag")
	}

	if offset+2 > len(buf) {
		return nil, newDecodeError(ErrUnexpectedEOF, offset, "truncated keep alive field")
	}
	pkt.KeepAlive = uint16(buf[offset])<<8 | uint16(buf[offset+1])
	offset += 2

	if version >= Version5 {
		props, nProps, err := decodeProperties(buf[offset:], CONNECT, opts)
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.Properties = props
		offset += nProps
	}

	clientID, n, err := decodeString(buf[offset:])
	if err != nil {
		return nil, withOffset(err, offset)
	}
	pkt.ClientID = clientID
	offset += n

	if pkt.WillFlag {
		if version >= Version5 {
			props, nProps, err := decodeProperties(buf[offset:], willPropertiesType, opts)
			if err != nil {
				return nil, withOffset(err, offset)
			}
			pkt.WillProperties = props
			offset += nProps
		}

		willTopic, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.WillTopic = willTopic
		offset += n

		willMessage, n, err := decodeBinary(buf[offset:])
		if err != nil {
			return nil, withOffset(err, offset)
		}
		if opts.BorrowPayloads {
			pkt.WillMessage = willMessage
		} else {
			pkt.WillMessage = append([]byte(nil), willMessage...)
		}
		offset += n
	}

	if pkt.UsernameFlag {
		username, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.Username = username
		offset += n
	}

	if pkt.PasswordFlag {
		password, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, withOffset(err, offset)
		}
		pkt.Password = password
		offset += n
	}

	if offset != len(buf) {
		return nil, newDecodeError(ErrTrailingBytes, offset, "%d trailing byte(s) after CONNECT payload", len(buf)-offset)
	}

	return pkt, nil
}
