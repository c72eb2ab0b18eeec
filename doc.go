// Package mqtt implements the MQTT v3.1, v3.1.1 and v5.0 control packet
// wire format: a pure codec with no network I/O, no connection state
// machine, and no broker or client session logic. It turns bytes into
// Packet values and back, and leaves everything above the wire format to
// the calling application.
//
// # Decoding
//
// Decode reads a single control packet from the front of a byte slice. It
// never blocks and never consumes its input destructively: when the slice
// doesn't yet hold a complete packet, Decode returns a *NeedMoreError
// instead of an error that looks fatal, and the caller is expected to
// append more bytes and call Decode again from the same offset.
//
//	pkt, n, err := mqtt.Decode(mqtt.Version5, buf, mqtt.DecodeOptions{})
//	switch {
//	case mqtt.IsNeedMore(err):
//	    // read more bytes and retry
//	case err != nil:
//	    var de *mqtt.DecodeError
//	    errors.As(err, &de)
//	    log.Printf("malformed packet: %s at offset %d", de.Kind, de.Offset)
//	default:
//	    handlePacket(pkt)
//	    buf = buf[n:]
//	}
//
// For a blocking io.Reader, ReadPacket wraps Decode in a simple grow-and-
// retry loop. For a non-blocking byte source, see the asyncdecode
// subpackage.
//
// # Encoding
//
// Every Packet implementation provides WriteTo(io.Writer), and PUBLISH and
// the PUBACK-family packets additionally provide Encode(dst []byte) ([]byte,
// error) for appending their wire form directly to a caller-owned buffer.
//
// # Versions
//
// Version selects which wire format Decode and the packet WriteTo methods
// use: Version31 ("MQIsdp"), Version311 ("MQTT", protocol level 4), and
// Version5 ("MQTT", protocol level 5, with the property system and reason
// codes). A decoder is not expected to infer the version from the bytes
// themselves — the caller supplies it, exactly as CONNECT negotiation
// would decide it for a real connection.
//
// # Errors
//
// Decode failures are reported as *DecodeError, which carries an ErrorKind
// classifying what went wrong and a byte Offset locating it in the input.
// All DecodeError kinds are non-retryable: MQTT's framing has no
// resynchronization point, so a caller that receives one should close the
// connection rather than attempt recovery.
package mqtt
