package aesc

import (
	"fmt"

	"github.com/krxecs/aes-c/aesni"
	"github.com/krxecs/aes-c/cpu"
)

// Init computes the key schedule and binds an engine to c. It probes
// the CPU and selects the AES-NI engine when the running build
// supports it (amd64) and the running CPU reports SSE, SSE2, SSSE3
// and AES all present; otherwise it binds the bitsliced engine, which
// is always available.
//
// Init returns ErrInvalidVariant if variant is not one of
// AES128/AES192/AES256. Any other misuse — a key slice of the wrong
// length for variant — is a programmer error and panics.
func (c *Context) Init(variant Variant, key []byte) error {
	if !variant.valid() {
		return ErrInvalidVariant
	}
	if len(key) != variant.KeySize() {
		panic(fmt.Sprintf("aesc: %s requires a %d-byte key, got %d bytes", variant, variant.KeySize(), len(key)))
	}

	c.variant = variant
	c.nr = variant.Nr()

	feat := cpu.Probe()
	c.useAESNI = aesni.Available() && feat.HasAESNI()

	if c.useAESNI {
		c.ni.Init(key, variant.Nk(), c.nr)
	} else {
		c.bs.Init(key, variant.Nk(), c.nr)
	}
	return nil
}
