package primitive

import (
	"testing"

	"github.com/dicomnet/dulengine/pdu"
)

func TestPDataRoundTrip(t *testing.T) {
	want := &PData{Values: []pdu.PresentationDataValueItem{
		{PresentationContextID: 1, MessageControlHeader: pdu.PDVCommand | pdu.PDVLastFragment, Data: []byte{0x01}},
	}}
	tf, err := ToPDataTF(want)
	if err != nil {
		t.Fatalf("ToPDataTF: %v", err)
	}
	got := FromPDataTF(tf)
	if len(got.Values) != 1 || got.Values[0].PresentationContextID != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestToPDataTFRejectsEmpty(t *testing.T) {
	if _, err := ToPDataTF(&PData{}); err == nil {
		t.Fatal("expected error for an empty P-DATA primitive")
	}
}
