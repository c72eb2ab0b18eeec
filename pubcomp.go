package mqtt

import "io"

// PubcompPacket represents an MQTT PUBCOMP control packet (QoS 2, step 3).
type PubcompPacket struct {
	PacketID uint16

	// MQTT v5.0 fields
	ReasonCode ReasonCode
	Properties *Properties
	Version    Version
}

// Type returns the packet type.
func (p *PubcompPacket) Type() uint8 {
	return PUBCOMP
}

// Encode serializes the PUBCOMP packet into dst.
func (p *PubcompPacket) Encode(dst []byte) ([]byte, error) {
	return encodeSimpleAck(dst, PUBCOMP, 0, p.Version, p.PacketID, p.ReasonCode, p.Properties), nil
}

// WriteTo writes the PUBCOMP packet to the writer.
func (p *PubcompPacket) WriteTo(w io.Writer) (int64, error) {
	bufPtr := GetBuffer(4096)
	defer PutBuffer(bufPtr)

	data, err := p.Encode((*bufPtr)[:0])
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// DecodePubcomp decodes a PUBCOMP packet body.
func DecodePubcomp(buf []byte, version Version, opts DecodeOptions) (*PubcompPacket, error) {
	packetID, reason, props, err := decodeSimpleAck(buf, PUBCOMP, version, opts)
	if err != nil {
		return nil, err
	}
	return &PubcompPacket{PacketID: packetID, ReasonCode: reason, Properties: props, Version: version}, nil
}
