package pdu

import "testing"

func TestApplicationContextItemRoundTrip(t *testing.T) {
	want := ApplicationContextItem{Name: "1.2.840.10008.3.1.1.1"}
	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, rest, err := DecodeApplicationContextItem(encoded, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %v, want empty", rest)
	}
}

func TestAbstractSyntaxItemRoundTrip(t *testing.T) {
	want := AbstractSyntaxItem{Name: "1.2.840.10008.1.1"}
	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, _, err := DecodeAbstractSyntaxItem(encoded, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTransferSyntaxItemRoundTrip(t *testing.T) {
	want := TransferSyntaxItem{Name: "1.2.840.10008.1.2"}
	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, _, err := DecodeTransferSyntaxItem(encoded, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodeApplicationContextItemWrongType(t *testing.T) {
	other := AbstractSyntaxItem{Name: "1.2.840.10008.1.1"}
	encoded, _ := other.Encode(false)
	if _, _, err := DecodeApplicationContextItem(encoded, false); err == nil {
		t.Fatal("expected error decoding an abstract syntax item as an application context item")
	}
}
