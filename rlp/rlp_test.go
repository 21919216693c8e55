package rlp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/lishuailibertine/web3go/internal/testutil"
)

func TestEncodeSingleByteSelfEncodes(t *testing.T) {
	for _, b := range []byte{0x00, 0x01, 0x7F} {
		got, err := Encode([]byte{b})
		if err != nil {
			t.Fatalf("encode(%#x): %v", b, err)
		}
		if len(got) != 1 || got[0] != b {
			t.Fatalf("encode(%#x) = %x, want %x", b, got, []byte{b})
		}
	}
}

func TestEncodeByteAt0x80NeedsHeader(t *testing.T) {
	got, err := Encode([]byte{0x80})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x81, 0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeShortString(t *testing.T) {
	got, err := Encode([]byte("dog"))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	got, err := Encode(List())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xC0}) {
		t.Fatalf("got %x, want C0", got)
	}
}

func TestEncodeNestedList(t *testing.T) {
	// [ [], [[]], [[],[[]]] ]
	tree := List(
		List(),
		List(List()),
		List(List(), List(List())),
	)
	got, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xC7, 0xC0, 0xC1, 0xC0, 0xC3, 0xC0, 0xC1, 0xC0}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeLongString(t *testing.T) {
	payload := bytes.Repeat([]byte{'a'}, 1024)
	got, err := Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	wantHeader := []byte{0xB9, 0x04, 0x00}
	if !bytes.Equal(got[:3], wantHeader) {
		t.Fatalf("header = %x, want %x", got[:3], wantHeader)
	}
	if !bytes.Equal(got[3:], payload) {
		t.Fatal("payload mismatch")
	}
}

func TestDecodeSingleByte(t *testing.T) {
	v, err := Decode([]byte{0x7F})
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsBytes() || !bytes.Equal(v.Str, []byte{0x7F}) {
		t.Fatalf("got %+v", v)
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	v, err := Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsEmpty() {
		t.Fatalf("expected KindEmpty, got %+v", v)
	}
}

func TestDecodeEmptyStringHeader(t *testing.T) {
	v, err := Decode([]byte{0x80})
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsBytes() || len(v.Str) != 0 {
		t.Fatalf("expected empty byte string, got %+v", v)
	}
}

func TestDecodeNestedListRoundTrip(t *testing.T) {
	raw := []byte{0xC7, 0xC0, 0xC1, 0xC0, 0xC3, 0xC0, 0xC1, 0xC0}
	v, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsList() || v.Len() != 3 {
		testutil.DumpOnFail(t, "decoded tree", v, raw)
		t.Fatalf("expected 3 top-level items, got %+v", v)
	}
	if !v.At(0).IsList() || v.At(0).Len() != 0 {
		t.Fatal("item 0 should be an empty list")
	}
	if !v.At(1).IsList() || v.At(1).Len() != 1 || !v.At(1).At(0).IsList() {
		t.Fatal("item 1 should be a list containing one empty list")
	}
	if !v.At(2).IsList() || v.At(2).Len() != 2 {
		t.Fatal("item 2 should be a list of two items")
	}

	// Re-encoding must reproduce the original canonical bytes.
	reenc, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(reenc, raw) {
		t.Fatalf("re-encode mismatch: got %x, want %x", reenc, raw)
	}
}

func TestDecodeTopLevelConcatenatedItemsAreSynthesized(t *testing.T) {
	// Two sibling short strings concatenated, as a list's stripped payload
	// would look: "dog" + "cat".
	raw := append(append([]byte{}, 0x83, 'd', 'o', 'g'), 0x83, 'c', 'a', 't')
	v, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsList() || v.Len() != 2 {
		t.Fatalf("expected synthetic 2-item list, got %+v", v)
	}
	if string(v.At(0).Str) != "dog" || string(v.At(1).Str) != "cat" {
		t.Fatalf("unexpected children: %q %q", v.At(0).Str, v.At(1).Str)
	}
	if !bytes.Equal(v.Raw, raw) {
		t.Fatal("synthetic wrapper should retain the original raw bytes")
	}
}

func TestDecodeLongStringRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{'z'}, 1024)
	raw, err := Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	v, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsBytes() || !bytes.Equal(v.Str, payload) {
		t.Fatal("long string round trip mismatch")
	}
}

func TestDecodeToleratesNonCanonicalLongForm(t *testing.T) {
	// "dog" written with a long-form header (k=1, length byte 0x03)
	// instead of the canonical short form 0x83.
	nonCanonical := []byte{0xB8, 0x03, 'd', 'o', 'g'}
	v, err := Decode(nonCanonical)
	if err != nil {
		t.Fatalf("expected tolerant decode, got error: %v", err)
	}
	if !v.IsBytes() || string(v.Str) != "dog" {
		t.Fatalf("got %+v", v)
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	if _, err := Decode([]byte{0xB8}); err == nil {
		t.Fatal("expected error for a length-of-length header with no length byte")
	}
}

func TestDecodeRejectsShortPayload(t *testing.T) {
	if _, err := Decode([]byte{0x83, 'd', 'o'}); err == nil {
		t.Fatal("expected error when declared payload length exceeds available bytes")
	}
}

func TestEncodeRejectsNegativeBigInt(t *testing.T) {
	if _, err := Encode(big.NewInt(-1)); err == nil {
		t.Fatal("expected error encoding a negative integer")
	}
}

func TestEncodeDecodeUint64RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 55, 56, 0xFF, 1 << 32} {
		enc, err := Encode(n)
		if err != nil {
			t.Fatal(err)
		}
		v, err := Decode(enc)
		if err != nil {
			t.Fatal(err)
		}
		if v.AsUint64() != n {
			t.Fatalf("round trip for %d: got %d", n, v.AsUint64())
		}
	}
}

func TestEncodeHexDecodeHexRoundTrip(t *testing.T) {
	tree := List(Bytes([]byte("dog")), Bytes([]byte("cat")))
	hexStr, err := EncodeToHex(tree)
	if err != nil {
		t.Fatal(err)
	}
	v, err := DecodeHex(hexStr)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsList() || v.Len() != 2 {
		t.Fatalf("got %+v", v)
	}
}
