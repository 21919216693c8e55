package abi

import (
	"math/big"
	"testing"
)

func TestEncodeBool(t *testing.T) {
	f := EncodeBool(false)
	tw := EncodeBool(true)
	var wantFalse, wantTrue Word
	wantTrue[31] = 1
	if f != wantFalse {
		t.Fatalf("false: got %x want %x", f, wantFalse)
	}
	if tw != wantTrue {
		t.Fatalf("true: got %x want %x", tw, wantTrue)
	}
}

func TestEncodeAddressLeftPads(t *testing.T) {
	addr, err := ParseAddress("0x6453D37248Ab2C16eBd1A8f782a2CBC65860E60B")
	if err != nil {
		t.Fatal(err)
	}
	w := EncodeAddress(addr)
	for i := 0; i < 12; i++ {
		if w[i] != 0 {
			t.Fatalf("expected zero padding at byte %d, got %x", i, w)
		}
	}
	if string(w[12:]) != string(addr[:]) {
		t.Fatalf("address bytes not preserved: %x vs %x", w[12:], addr[:])
	}
}

func TestEncodeUintZero(t *testing.T) {
	w, err := EncodeUint(256, big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	var zero Word
	if w != zero {
		t.Fatalf("uint256(0) should encode as all zero, got %x", w)
	}
}

func TestEncodeUintRejectsNegative(t *testing.T) {
	if _, err := EncodeUint(256, big.NewInt(-1)); err == nil {
		t.Fatal("expected error for negative uint")
	}
}

func TestEncodeUintRejectsOverflow(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 8) // 256, doesn't fit uint8
	if _, err := EncodeUint(8, tooBig); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestEncodeIntNegativeOne(t *testing.T) {
	w, err := EncodeInt(256, big.NewInt(-1))
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range w {
		if b != 0xFF {
			t.Fatalf("-1 should encode as all 0xFF, got %x", w)
		}
	}
}

func TestEncodeIntRangeChecks(t *testing.T) {
	// int8 range is -128..127
	if _, err := EncodeInt(8, big.NewInt(128)); err == nil {
		t.Fatal("expected out-of-range error for 128 as int8")
	}
	if _, err := EncodeInt(8, big.NewInt(-129)); err == nil {
		t.Fatal("expected out-of-range error for -129 as int8")
	}
	if _, err := EncodeInt(8, big.NewInt(127)); err != nil {
		t.Fatalf("127 should fit int8: %v", err)
	}
	if _, err := EncodeInt(8, big.NewInt(-128)); err != nil {
		t.Fatalf("-128 should fit int8: %v", err)
	}
}

func TestEncodeBytesFixedRightPads(t *testing.T) {
	w, err := EncodeBytesFixed(4, []byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatal(err)
	}
	want := Word{0xde, 0xad, 0xbe, 0xef}
	if w != want {
		t.Fatalf("got %x want %x", w, want)
	}
}

func TestEncodeBytesFixedRejectsWrongLength(t *testing.T) {
	if _, err := EncodeBytesFixed(4, []byte{0x01}); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestParseAddressRejectsBadInput(t *testing.T) {
	cases := []string{"", "0x123", "not-an-address", "0x" + "zz1234567890123456789012345678901234567"}
	for _, c := range cases {
		if _, err := ParseAddress(c); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}
