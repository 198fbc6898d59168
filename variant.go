package aesc

import "fmt"

// Variant selects a key size for AES. The zero value, AES128, is not
// a sentinel for "unset" — Context.Init must still be called before a
// Context is usable.
type Variant uint8

const (
	AES128 Variant = iota
	AES192
	AES256
)

// Nk returns the number of 32-bit words in the cipher key: 4, 6 or 8.
func (v Variant) Nk() int {
	switch v {
	case AES128:
		return 4
	case AES192:
		return 6
	case AES256:
		return 8
	default:
		return 0
	}
}

// Nr returns the number of rounds: 10, 12 or 14.
func (v Variant) Nr() int {
	switch v {
	case AES128:
		return 10
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 0
	}
}

// KeySize returns the key size in bytes.
func (v Variant) KeySize() int {
	return 4 * v.Nk()
}

// NumRoundKeys returns Nr+1, the number of 16-byte round keys the
// schedule produces.
func (v Variant) NumRoundKeys() int {
	return v.Nr() + 1
}

func (v Variant) valid() bool {
	switch v {
	case AES128, AES192, AES256:
		return true
	default:
		return false
	}
}

func (v Variant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}
