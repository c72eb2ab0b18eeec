package mqtt

import "io"

// PubrecPacket represents an MQTT PUBREC control packet (QoS 2, step 1).
type PubrecPacket struct {
	PacketID uint16

	// MQTT v5.0 fields
	ReasonCode ReasonCode
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *PubrecPacket) Type() uint8 {
	return PUBREC
}

// Encode serializes the PUBREC packet into dst.
func (p *PubrecPacket) Encode(dst []byte) ([]byte, error) {
	return encodeSimpleAck(dst, PUBREC, 0, p.Version, p.PacketID, p.ReasonCode, p.Properties), nil
}

// WriteTo writes the PUBREC packet to the writer.
func (p *PubrecPacket) WriteTo(w io.Writer) (int64, error) {
	bufPtr := GetBuffer(4096)
	defer PutBuffer(bufPtr)

	data, err := p.Encode((*bufPtr)[:0])
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// DecodePubrec decodes a PUBREC packet body.
func DecodePubrec(buf []byte, version Version, opts DecodeOptions) (*PubrecPacket, error) {
	packetID, reason, props, err := decodeSimpleAck(buf, PUBREC, version, opts)
	if err != nil {
		return nil, err
	}
	return &PubrecPacket{PacketID: packetID, ReasonCode: reason, Properties: props, Version: version}, nil
}
