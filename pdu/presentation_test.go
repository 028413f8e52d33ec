package pdu

import "testing"

func TestPresentationContextRQItemRoundTrip(t *testing.T) {
	want := PresentationContextRQItem{
		ID:             1,
		AbstractSyntax: AbstractSyntaxItem{Name: "1.2.840.10008.1.1"},
		TransferSyntaxes: []TransferSyntaxItem{
			{Name: "1.2.840.10008.1.2"},
			{Name: "1.2.840.10008.1.2.1"},
		},
	}
	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, rest, err := DecodePresentationContextRQItem(encoded, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ID != want.ID || got.AbstractSyntax != want.AbstractSyntax || len(got.TransferSyntaxes) != 2 {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %v, want empty", rest)
	}
}

func TestPresentationContextRQItemRejectsEvenID(t *testing.T) {
	pc := PresentationContextRQItem{
		ID:               2,
		AbstractSyntax:   AbstractSyntaxItem{Name: "1.2.840.10008.1.1"},
		TransferSyntaxes: []TransferSyntaxItem{{Name: "1.2.840.10008.1.2"}},
	}
	if _, err := pc.Encode(false); err == nil {
		t.Fatal("expected error for even presentation context ID")
	}
}

func TestPresentationContextRQItemRejectsNoTransferSyntax(t *testing.T) {
	pc := PresentationContextRQItem{
		ID:             1,
		AbstractSyntax: AbstractSyntaxItem{Name: "1.2.840.10008.1.1"},
	}
	if _, err := pc.Encode(false); err == nil {
		t.Fatal("expected error for zero transfer syntaxes")
	}
}

func TestPresentationContextACItemRoundTrip(t *testing.T) {
	want := PresentationContextACItem{
		ID:             1,
		Result:         PresentationContextAccepted,
		TransferSyntax: TransferSyntaxItem{Name: "1.2.840.10008.1.2"},
	}
	encoded, err := want.Encode(false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, _, err := DecodePresentationContextACItem(encoded, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPresentationContextResultString(t *testing.T) {
	tests := []struct {
		result PresentationContextResult
		want   string
	}{
		{PresentationContextAccepted, "accepted"},
		{PresentationContextUserRejection, "user-rejection"},
		{PresentationContextAbstractSyntaxNotSupported, "abstract-syntax-not-supported"},
		{PresentationContextResult(0xff), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
