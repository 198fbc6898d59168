package aesc

import (
	"github.com/krxecs/aes-c/aesni"
	"github.com/krxecs/aes-c/bitslice"
)

// blockCipher is the single-block primitive the mode layer dispatches
// through. Both bitslice.Engine and aesni.Engine satisfy it; binding
// one or the other at Init time is the entire dispatch mechanism — no
// closures or function-pointer table are needed since Go interface
// values already carry a type tag and a pointer, at the cost of one
// indirect call per block instead of the five bound function pointers
// spec.md §3 describes. See SPEC_FULL.md §4.5 for why the mode layer
// is shared across engines.
type blockCipher interface {
	EncryptBlock(dst, src *[16]byte)
	DecryptBlock(dst, src *[16]byte)
}

// Context holds the round-key schedule for one AES key and the engine
// bound to it. The zero value is not usable; call Init (or use
// NewContext) before any mode operation.
//
// A Context contains no pointers into memory outside itself, so it is
// trivially copyable, but copying after Init duplicates the round-key
// storage rather than sharing it — both copies remain independently
// valid. It is not safe for concurrent mutation, but concurrent mode
// operations against the same Context are safe once Init has
// returned, since no mode operation writes to the Context.
type Context struct {
	variant  Variant
	nr       int
	useAESNI bool
	bs       bitslice.Engine
	ni       aesni.Engine
}

// NewContext allocates and initializes a Context in one step.
func NewContext(variant Variant, key []byte) (*Context, error) {
	c := &Context{}
	if err := c.Init(variant, key); err != nil {
		return nil, err
	}
	return c, nil
}

// Variant reports the variant this Context was initialized with.
func (c *Context) Variant() Variant {
	return c.variant
}

// UsesAESNI reports whether Init bound the hardware engine. It only
// reports the choice Init made; it does not select an engine.
func (c *Context) UsesAESNI() bool {
	return c.useAESNI
}

func (c *Context) engine() blockCipher {
	if c.useAESNI {
		return &c.ni
	}
	return &c.bs
}
