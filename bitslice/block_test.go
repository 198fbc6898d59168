package bitslice

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestFIPS197Vectors(t *testing.T) {
	cases := []struct {
		name       string
		key        string
		nk, nr     int
		plaintext  string
		ciphertext string
	}{
		{
			name: "AES-128", key: "000102030405060708090a0b0c0d0e0f", nk: 4, nr: 10,
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name: "AES-192", key: "000102030405060708090a0b0c0d0e0f1011121314151617", nk: 6, nr: 12,
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			name: "AES-256", key: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", nk: 8, nr: 14,
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "8ea2b7ca516745bfeafc49904b496089",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var e Engine
			e.Init(mustHex(t, c.key), c.nk, c.nr)

			var pt, ct, got [16]byte
			copy(pt[:], mustHex(t, c.plaintext))
			copy(ct[:], mustHex(t, c.ciphertext))

			e.EncryptBlock(&got, &pt)
			if got != ct {
				t.Fatalf("encrypt mismatch: got %x want %x", got, ct)
			}

			var back [16]byte
			e.DecryptBlock(&back, &got)
			if back != pt {
				t.Fatalf("decrypt mismatch: got %x want %x", back, pt)
			}
		})
	}
}

func TestRoundTripRandom(t *testing.T) {
	variants := []struct{ nk, nr int }{{4, 10}, {6, 12}, {8, 14}}
	for _, v := range variants {
		key := make([]byte, 4*v.nk)
		for i := range key {
			key[i] = byte(i*37 + v.nk)
		}
		var e Engine
		e.Init(key, v.nk, v.nr)

		for trial := 0; trial < 16; trial++ {
			var pt [16]byte
			for i := range pt {
				pt[i] = byte(trial*31 + i*7)
			}
			var ct, back [16]byte
			e.EncryptBlock(&ct, &pt)
			e.DecryptBlock(&back, &ct)
			if back != pt {
				t.Fatalf("nk=%d round trip mismatch at trial %d: got %x want %x", v.nk, trial, back, pt)
			}
		}
	}
}

func TestFromToBytesRoundTrip(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i*53 + 11)
	}
	s := FromBytes(&in)
	var out [16]byte
	s.ToBytes(&out)
	if !bytes.Equal(in[:], out[:]) {
		t.Fatalf("FromBytes/ToBytes not inverse: got %x want %x", out, in)
	}
}

func TestShiftRowsInverse(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i * 17)
	}
	s := FromBytes(&in)
	orig := s
	ShiftRows(&s)
	InvShiftRows(&s)
	if s != orig {
		t.Fatalf("ShiftRows/InvShiftRows not inverse: got %v want %v", s, orig)
	}
}

func TestMixColumnsInverse(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i*59 + 3)
	}
	s := FromBytes(&in)
	orig := s
	MixColumns(&s)
	InvMixColumns(&s)
	if s != orig {
		t.Fatalf("MixColumns/InvMixColumns not inverse: got %v want %v", s, orig)
	}
}

func TestSubBytesInverse(t *testing.T) {
	var in [16]byte
	for i := range in {
		in[i] = byte(i * 29)
	}
	s := FromBytes(&in)
	orig := s
	SubBytes(&s)
	InvSubBytes(&s)
	if s != orig {
		t.Fatalf("SubBytes/InvSubBytes not inverse: got %v want %v", s, orig)
	}
}

// TestSubBytesKnownValues pins the bitsliced S-box circuit against a
// handful of entries from the FIPS-197 table, independent of the
// round-trip test above (which would also pass for any involution,
// not just this one).
func TestSubBytesKnownValues(t *testing.T) {
	cases := []struct{ in, want byte }{
		{0x00, 0x63},
		{0x01, 0x7c},
		{0x53, 0xed},
		{0xff, 0x16},
	}
	for _, c := range cases {
		var block [16]byte
		block[0] = c.in
		s := FromBytes(&block)
		SubBytes(&s)
		var out [16]byte
		s.ToBytes(&out)
		if out[0] != c.want {
			t.Fatalf("SubBytes(%#02x) = %#02x, want %#02x", c.in, out[0], c.want)
		}
	}
}
