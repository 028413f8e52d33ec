package codec

import "testing"

func TestEncodeAETitlePadsToSixteen(t *testing.T) {
	out, err := EncodeAETitle("ECHOSCU", false)
	if err != nil {
		t.Fatalf("EncodeAETitle: %v", err)
	}
	if len(out) != AETitleLength {
		t.Fatalf("len(out) = %d, want %d", len(out), AETitleLength)
	}
	if string(out) != "ECHOSCU         " {
		t.Errorf("EncodeAETitle(%q) = %q", "ECHOSCU", out)
	}
}

func TestEncodeAETitleExactLength(t *testing.T) {
	title := "SIXTEEN_CHARS_AE"
	if len(title) != AETitleLength {
		t.Fatalf("test fixture length = %d, want %d", len(title), AETitleLength)
	}
	out, err := EncodeAETitle(title, false)
	if err != nil {
		t.Fatalf("EncodeAETitle: %v", err)
	}
	if string(out) != title {
		t.Errorf("EncodeAETitle(%q) = %q", title, out)
	}
}

func TestEncodeAETitleTooLongRejected(t *testing.T) {
	_, err := EncodeAETitle("THIS_TITLE_IS_WAY_TOO_LONG", false)
	if err == nil {
		t.Fatal("expected error for over-length AE title")
	}
}

func TestEncodeAETitleTooLongAllowed(t *testing.T) {
	title := "THIS_TITLE_IS_WAY_TOO_LONG"
	out, err := EncodeAETitle(title, true)
	if err != nil {
		t.Fatalf("EncodeAETitle with allowLong: %v", err)
	}
	if string(out) != title {
		t.Errorf("EncodeAETitle(%q, true) = %q", title, out)
	}
}

func TestEncodeAETitleRejectsEmpty(t *testing.T) {
	if _, err := EncodeAETitle("   ", false); err == nil {
		t.Fatal("expected error for all-space AE title")
	}
}

func TestEncodeAETitleRejectsBackslash(t *testing.T) {
	if _, err := EncodeAETitle(`BAD\TITLE`, false); err == nil {
		t.Fatal("expected error for AE title containing backslash")
	}
}

func TestDecodeAETitleTrimsSpaces(t *testing.T) {
	got, err := DecodeAETitle([]byte("ECHOSCU         "))
	if err != nil {
		t.Fatalf("DecodeAETitle: %v", err)
	}
	if got != "ECHOSCU" {
		t.Errorf("DecodeAETitle = %q, want %q", got, "ECHOSCU")
	}
}

func TestDecodeAETitleRejectsAllSpace(t *testing.T) {
	if _, err := DecodeAETitle([]byte("                ")); err == nil {
		t.Fatal("expected error decoding an all-space AE title")
	}
}

func TestAETitleRoundTrip(t *testing.T) {
	want := "STORESCP"
	encoded, err := EncodeAETitle(want, false)
	if err != nil {
		t.Fatalf("EncodeAETitle: %v", err)
	}
	got, err := DecodeAETitle(encoded)
	if err != nil {
		t.Fatalf("DecodeAETitle: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}
