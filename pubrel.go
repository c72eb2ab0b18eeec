package mqtt

import "io"

// PubrelPacket represents an MQTT PUBREL control packet (QoS 2, step 2).
type PubrelPacket struct {
	PacketID uint16

	// MQTT v5.0 fields
	ReasonCode ReasonCode
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *PubrelPacket) Type() uint8 {
	return PUBREL
}

// Encode serializes the PUBREL packet into dst.
func (p *PubrelPacket) Encode(dst []byte) ([]byte, error) {
	return encodeSimpleAck(dst, PUBREL, 0x02, p.Version, p.PacketID, p.ReasonCode, p.Properties), nil
}

// WriteTo writes the PUBREL packet to the writer.
func (p *PubrelPacket) WriteTo(w io.Writer) (int64, error) {
	bufPtr := GetBuffer(4096)
	defer PutBuffer(bufPtr)

	data, err := p.Encode((*bufPtr)[:0])
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// DecodePubrel decodes a PUBREL packet body.
func DecodePubrel(buf []byte, version Version, opts DecodeOptions) (*PubrelPacket, error) {
	packetID, reason, props, err := decodeSimpleAck(buf, PUBREL, version, opts)
	if err != nil {
		return nil, err
	}
	return &PubrelPacket{PacketID: packetID, ReasonCode: reason, Properties: props, Version: version}, nil
}
