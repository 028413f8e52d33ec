package pdu

import "testing"

func TestDecodeDispatchesByType(t *testing.T) {
	rq := sampleRQ()
	encoded, err := rq.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Type() != TypeAssociateRQ {
		t.Errorf("Type() = 0x%02x, want 0x%02x", decoded.Type(), TypeAssociateRQ)
	}
	if _, ok := decoded.(*AAssociateRQ); !ok {
		t.Errorf("Decode returned %T, want *AAssociateRQ", decoded)
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	raw := EncodeHeader(Header{Type: 0xAA}, nil)
	if _, err := Decode(raw, false); err == nil {
		t.Fatal("expected error decoding an unrecognized PDU type")
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	if _, err := Decode([]byte{0x01, 0x00}, false); err == nil {
		t.Fatal("expected error decoding a truncated header")
	}
}

func TestIsKnownType(t *testing.T) {
	for _, known := range []byte{TypeAssociateRQ, TypeAssociateAC, TypeAssociateRJ, TypePDataTF, TypeReleaseRQ, TypeReleaseRP, TypeAbort} {
		if !IsKnownType(known) {
			t.Errorf("IsKnownType(0x%02x) = false, want true", known)
		}
	}
	if IsKnownType(0x08) {
		t.Error("IsKnownType(0x08) = true, want false")
	}
}
