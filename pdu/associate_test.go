package pdu

import "testing"

func sampleRQ() *AAssociateRQ {
	return &AAssociateRQ{
		CalledAETitle:      "STORESCP",
		CallingAETitle:     "STORESCU",
		ApplicationContext: ApplicationContextItem{Name: "1.2.840.10008.3.1.1.1"},
		PresentationContexts: []PresentationContextRQItem{
			{
				ID:             1,
				AbstractSyntax: AbstractSyntaxItem{Name: "1.2.840.10008.1.1"},
				TransferSyntaxes: []TransferSyntaxItem{
					{Name: "1.2.840.10008.1.2"},
				},
			},
		},
		UserInformation: UserInformationItem{
			MaxLength:              MaxLengthItem{MaxLength: 16384},
			ImplementationClassUID: ImplementationClassUIDItem{UID: "1.2.840.10008.1.1.1"},
		},
	}
}

func TestAAssociateRQRoundTrip(t *testing.T) {
	want := sampleRQ()
	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded[0] != TypeAssociateRQ {
		t.Errorf("type byte = 0x%02x, want 0x%02x", encoded[0], TypeAssociateRQ)
	}

	_, body, err := DecodeHeader(encoded)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	got, err := DecodeAAssociateRQ(body, false)
	if err != nil {
		t.Fatalf("DecodeAAssociateRQ: %v", err)
	}
	if got.CalledAETitle != want.CalledAETitle || got.CallingAETitle != want.CallingAETitle {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.PresentationContexts) != 1 {
		t.Fatalf("PresentationContexts len = %d, want 1", len(got.PresentationContexts))
	}
	if got.PresentationContexts[0].AbstractSyntax != want.PresentationContexts[0].AbstractSyntax {
		t.Errorf("AbstractSyntax mismatch")
	}
}

func TestAAssociateRQDefaultsProtocolVersion(t *testing.T) {
	rq := sampleRQ()
	encoded, err := rq.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, body, _ := DecodeHeader(encoded)
	got, err := DecodeAAssociateRQ(body, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ProtocolVersion != CurrentProtocolVersion {
		t.Errorf("ProtocolVersion = %d, want %d", got.ProtocolVersion, CurrentProtocolVersion)
	}
}

func TestAAssociateRQRejectsNoPresentationContexts(t *testing.T) {
	rq := sampleRQ()
	rq.PresentationContexts = nil
	if _, err := rq.Encode(false); err == nil {
		t.Fatal("expected error for zero presentation contexts")
	}
}

func TestAAssociateACRoundTrip(t *testing.T) {
	want := &AAssociateAC{
		CalledAETitle:      "STORESCP",
		CallingAETitle:     "STORESCU",
		ApplicationContext: ApplicationContextItem{Name: "1.2.840.10008.3.1.1.1"},
		PresentationContexts: []PresentationContextACItem{
			{ID: 1, Result: PresentationContextAccepted, TransferSyntax: TransferSyntaxItem{Name: "1.2.840.10008.1.2"}},
		},
		UserInformation: UserInformationItem{
			MaxLength:              MaxLengthItem{MaxLength: 16384},
			ImplementationClassUID: ImplementationClassUIDItem{UID: "1.2.840.10008.1.1.1"},
		},
	}

	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, body, err := DecodeHeader(encoded)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	got, err := DecodeAAssociateAC(body, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.PresentationContexts) != 1 || got.PresentationContexts[0].Result != PresentationContextAccepted {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeAAssociateRQTruncated(t *testing.T) {
	if _, err := DecodeAAssociateRQ([]byte{0x00, 0x01}, false); err == nil {
		t.Fatal("expected error decoding a truncated A-ASSOCIATE-RQ body")
	}
}
