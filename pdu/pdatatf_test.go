package pdu

import "testing"

func TestPDataTFRoundTrip(t *testing.T) {
	want := &PDataTF{
		Items: []PresentationDataValueItem{
			{PresentationContextID: 1, MessageControlHeader: PDVCommand | PDVLastFragment, Data: []byte{0x01, 0x02}},
			{PresentationContextID: 1, MessageControlHeader: 0x00, Data: make([]byte, 100)},
			{PresentationContextID: 1, MessageControlHeader: PDVLastFragment, Data: make([]byte, 50)},
		},
	}
	encoded, err := want.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, body, err := DecodeHeader(encoded)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	got, err := DecodePDataTF(body)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("Items len = %d, want 3", len(got.Items))
	}
	if !got.Items[0].IsCommand() || !got.Items[0].IsLastFragment() {
		t.Errorf("Items[0] control header flags wrong: %+v", got.Items[0])
	}
	if got.Items[1].IsLastFragment() {
		t.Errorf("Items[1] should not be last fragment")
	}
	if len(got.Items[1].Data) != 100 {
		t.Errorf("Items[1].Data len = %d, want 100", len(got.Items[1].Data))
	}
}

func TestPDataTFRejectsEmpty(t *testing.T) {
	p := &PDataTF{}
	if _, err := p.Encode(); err == nil {
		t.Fatal("expected error encoding a P-DATA-TF with no items")
	}
}

func TestDecodePDataTFRejectsEmptyBody(t *testing.T) {
	if _, err := DecodePDataTF(nil); err == nil {
		t.Fatal("expected error decoding an empty P-DATA-TF body")
	}
}
