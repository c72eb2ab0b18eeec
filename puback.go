package mqtt

import "io"

// PubackPacket represents an MQTT PUBACK control packet (QoS 1 acknowledgment).
type PubackPacket struct {
	PacketID uint16

	// MQTT v5.0 fields
	ReasonCode ReasonCode
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *PubackPacket) Type() uint8 {
	return PUBACK
}

// Encode serializes the PUBACK packet into dst.
func (p *PubackPacket) Encode(dst []byte) ([]byte, error) {
	return encodeSimpleAck(dst, PUBACK, 0, p.Version, p.PacketID, p.ReasonCode, p.Properties), nil
}

// WriteTo writes the PUBACK packet to the writer.
func (p *PubackPacket) WriteTo(w io.Writer) (int64, error) {
	bufPtr := GetBuffer(4096)
	defer PutBuffer(bufPtr)

	data, err := p.Encode((*bufPtr)[:0])
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// DecodePuback decodes a PUBACK packet body.
func DecodePuback(buf []byte, version Version, opts DecodeOptions) (*PubackPacket, error) {
	packetID, reason, props, err := decodeSimpleAck(buf, PUBACK, version, opts)
	if err != nil {
		return nil, err
	}
	return &PubackPacket{PacketID: packetID, ReasonCode: reason, Properties: props, Version: version}, nil
}
