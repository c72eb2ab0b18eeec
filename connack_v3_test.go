package mqtt

import "testing"

func TestConnackV3Decoding(t *testing.T) {
	// Simulate a v3.1.1 CONNACK from a real broker.
	// Format: [Session Present flags] [Return Code]
	buf := []byte{
		0x00, // No session present
		0x00, // Connection accepted
	}

	decoded, err := DecodeConnack(buf, Version311, DecodeOptions{})
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if decoded.ReturnCode != ConnAccepted {
		t.Errorf("return code = %d, want %d", decoded.ReturnCode, ConnAccepted)
	}

	if decoded.SessionPresent {
		t.Error("session present should be false")
	}
}

func TestConnackV3WithRefusal(t *testing.T) {
	buf := []byte{
		0x00, // No session present
		0x01, // Unacceptable protocol version
	}

	decoded, err := DecodeConnack(buf, Version311, DecodeOptions{})
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if decoded.ReturnCode != ConnRefusedUnacceptableProtocol {
		t.Errorf("return code = %d, want %d (unacceptable protocol)",
			decoded.ReturnCode, ConnRefusedUnacceptableProtocol)
	}
}

func TestConnackV3RejectsSessionPresentOnRefusal(t *testing.T) {
	buf := []byte{0x01, 0x01}

	_, err := DecodeConnack(buf, Version311, DecodeOptions{})
	if AsDecodeError(err) == nil {
		t.Fatal("expected a DecodeError for session present alongside a refusal code")
	}
}

func TestConnackV3TrailingBytes(t *testing.T) {
	buf := []byte{0x00, 0x00, 0xAA}

	_, err := DecodeConnack(buf, Version311, DecodeOptions{})
	de := AsDecodeError(err)
	if de == nil || de.Kind != ErrTrailingBytes {
		t.Fatalf("DecodeConnack() error = %v, want ErrTrailingBytes", err)
	}
}
