package aesc

// EncryptECB and DecryptECB process src in independent 16-byte blocks
// through the bound engine's single-block primitive. len(src) must be
// a multiple of 16; dst and src may be the identical slice (in-place)
// but must not otherwise overlap.
func (c *Context) EncryptECB(dst, src []byte) {
	c.ecb(dst, src, true)
}

func (c *Context) DecryptECB(dst, src []byte) {
	c.ecb(dst, src, false)
}

func (c *Context) ecb(dst, src []byte, encrypt bool) {
	requireEqualLen(dst, src)
	requireBlockAligned(src)

	eng := c.engine()
	var in, out [16]byte
	for i := 0; i < len(src); i += 16 {
		copy(in[:], src[i:i+16])
		if encrypt {
			eng.EncryptBlock(&out, &in)
		} else {
			eng.DecryptBlock(&out, &in)
		}
		copy(dst[i:i+16], out[:])
	}
}

// EncryptCBC encrypts src under CBC chaining starting from iv. Each
// ciphertext block becomes the chaining value for the next. len(src)
// must be a multiple of 16.
func (c *Context) EncryptCBC(dst, src []byte, iv *[16]byte) {
	requireEqualLen(dst, src)
	requireBlockAligned(src)

	eng := c.engine()
	prev := *iv
	var in, ct [16]byte
	for i := 0; i < len(src); i += 16 {
		copy(in[:], src[i:i+16])
		for j := 0; j < 16; j++ {
			in[j] ^= prev[j]
		}
		eng.EncryptBlock(&ct, &in)
		copy(dst[i:i+16], ct[:])
		prev = ct
	}
}

// DecryptCBC reverses EncryptCBC. The chaining value for each block is
// the *ciphertext* block just read, not its decryption.
func (c *Context) DecryptCBC(dst, src []byte, iv *[16]byte) {
	requireEqualLen(dst, src)
	requireBlockAligned(src)

	eng := c.engine()
	prev := *iv
	var in, pt [16]byte
	for i := 0; i < len(src); i += 16 {
		copy(in[:], src[i:i+16])
		eng.DecryptBlock(&pt, &in)
		for j := 0; j < 16; j++ {
			pt[j] ^= prev[j]
		}
		copy(dst[i:i+16], pt[:])
		prev = in
	}
}

// CryptCTR XORs src with the keystream E(iv), E(iv+1), ... and writes
// the result to dst. It accepts any length, including lengths that
// aren't a multiple of 16 — the trailing partial block only consumes
// as many keystream bytes as it needs. Encryption and decryption are
// the same operation. If nextIV is non-nil, the counter value one
// past the last block consumed (ready for the next call) is written
// there.
func (c *Context) CryptCTR(dst, src []byte, iv *[16]byte, nextIV *[16]byte) {
	requireEqualLen(dst, src)

	eng := c.engine()
	counter := *iv
	var stream [16]byte

	full := len(src) / 16
	for i := 0; i < full; i++ {
		eng.EncryptBlock(&stream, &counter)
		base := i * 16
		for j := 0; j < 16; j++ {
			dst[base+j] = src[base+j] ^ stream[j]
		}
		incrementCounter(&counter)
	}

	if r := len(src) % 16; r > 0 {
		eng.EncryptBlock(&stream, &counter)
		base := full * 16
		for j := 0; j < r; j++ {
			dst[base+j] = src[base+j] ^ stream[j]
		}
		incrementCounter(&counter)
	}

	if nextIV != nil {
		*nextIV = counter
	}
}

// incrementCounter treats ctr as a big-endian 128-bit unsigned integer
// and adds 1, wrapping mod 2^128. Both engines share this single
// implementation — see SPEC_FULL.md §4.5 for why the counter isn't
// incremented separately in each engine's native representation.
func incrementCounter(ctr *[16]byte) {
	for i := 15; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}

func requireEqualLen(dst, src []byte) {
	if len(dst) != len(src) {
		panic("aesc: dst and src must be the same length")
	}
}

func requireBlockAligned(b []byte) {
	if len(b)%16 != 0 {
		panic("aesc: input length must be a multiple of 16 bytes")
	}
}
