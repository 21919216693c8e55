package hexutil

import "testing"

func TestDecodeRequiresPrefix(t *testing.T) {
	if _, err := Decode("abcd"); err != ErrMissingPrefix {
		t.Fatalf("expected ErrMissingPrefix, got %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(""); err != ErrEmptyString {
		t.Fatalf("expected ErrEmptyString, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef}
	enc := Encode(in)
	if enc != "0xdeadbeef" {
		t.Fatalf("Encode = %s, want 0xdeadbeef", enc)
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if string(dec) != string(in) {
		t.Fatalf("round trip mismatch: %x vs %x", dec, in)
	}
}

func TestDecodeFlexibleAcceptsBothForms(t *testing.T) {
	withPrefix, err := DecodeFlexible("0x64656164")
	if err != nil {
		t.Fatal(err)
	}
	without, err := DecodeFlexible("64656164")
	if err != nil {
		t.Fatal(err)
	}
	if string(withPrefix) != string(without) {
		t.Fatalf("prefixed/unprefixed mismatch")
	}
	if string(withPrefix) != "dead" {
		t.Fatalf("got %q, want %q", withPrefix, "dead")
	}
}

func TestDecodeFlexibleRejectsOddLength(t *testing.T) {
	if _, err := DecodeFlexible("abc"); err != ErrOddLength {
		t.Fatalf("expected ErrOddLength, got %v", err)
	}
}
