package crypto

import (
	"encoding/hex"
	"testing"
)

func TestKeccak256KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", []byte{}, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", []byte("abc"), "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(Keccak256(tt.in))
			if got != tt.want {
				t.Fatalf("Keccak256(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeccak256Variadic(t *testing.T) {
	whole := Keccak256([]byte("hello world"))
	split := Keccak256([]byte("hello "), []byte("world"))
	if hex.EncodeToString(whole) != hex.EncodeToString(split) {
		t.Fatalf("variadic concatenation mismatch: %x vs %x", whole, split)
	}
}

func TestKeccak256ArrayMatchesSlice(t *testing.T) {
	data := []byte("the quick brown fox")
	slice := Keccak256(data)
	arr := Keccak256Array(data)
	if hex.EncodeToString(slice) != hex.EncodeToString(arr[:]) {
		t.Fatalf("array/slice mismatch")
	}
}

func TestKeccak256StringNoFraming(t *testing.T) {
	s := "dog"
	if hex.EncodeToString(Keccak256String(s)) != hex.EncodeToString(Keccak256([]byte(s))) {
		t.Fatalf("string hash should equal raw byte hash with no length framing")
	}
}
