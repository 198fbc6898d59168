// Package aesni implements the hardware-accelerated AES engine for
// amd64 using the AESENC/AESDEC/AESKEYGENASSIST/AESIMC instruction
// set extension. On any other architecture (see stub_other.go) the
// engine reports itself permanently unavailable so the dispatcher
// always falls back to the bitslice engine.
package aesni

// Engine is the AES-NI engine. Like bitslice.Engine it performs no
// heap allocation and holds no external pointers, so it is trivially
// copyable and safe for concurrent read-only use once Init has
// returned. encKS holds the encryption round keys in the order
// AESENC/AESENCLAST expect; decKS holds the Equivalent Inverse Cipher
// schedule AESDEC/AESDECLAST expect (spec.md §4.4.3), populated only
// here — the bitslice engine has no use for a separate decryption
// schedule.
type Engine struct {
	nr    int
	encKS [15][16]byte
	decKS [15][16]byte
}

// Available reports whether this build can actually run AES-NI code;
// false on every architecture but amd64.
func Available() bool {
	return available
}

// Init computes both the encryption and the Equivalent Inverse Cipher
// decryption key schedules for a key of nk 32-bit words and nr rounds.
func (e *Engine) Init(key []byte, nk, nr int) {
	e.nr = nr
	var raw [16]byte
	copy(raw[:], key)

	switch nk {
	case 4:
		expandKey128(&e.encKS, &raw)
	case 6:
		var raw24 [24]byte
		copy(raw24[:], key)
		expandKey192(&e.encKS, &raw24)
	case 8:
		var raw32 [32]byte
		copy(raw32[:], key)
		expandKey256(&e.encKS, &raw32)
	}

	deriveDecryptKeys(&e.decKS, &e.encKS, nr)
}

// deriveDecryptKeys builds the Equivalent Inverse Cipher schedule from
// the encryption schedule (spec.md §4.4.3): the first and last
// decryption round keys are the last and first encryption round keys
// unchanged, and every round key in between is run through AESIMC.
func deriveDecryptKeys(dec, enc *[15][16]byte, nr int) {
	dec[nr] = enc[0]
	dec[0] = enc[nr]
	for i := 1; i < nr; i++ {
		aesimc(&dec[nr-i], &enc[i])
	}
}

// EncryptBlock runs the standard forward AES-NI round sequence: XOR
// with encKS[0], AESENC for rounds 1..Nr-1, AESENCLAST with encKS[Nr].
func (e *Engine) EncryptBlock(dst, src *[16]byte) {
	encryptBlockAsm(dst, src, &e.encKS, e.nr)
}

// DecryptBlock runs the Equivalent Inverse Cipher: XOR with decKS[0],
// AESDEC for rounds 1..Nr-1, AESDECLAST with decKS[Nr].
func (e *Engine) DecryptBlock(dst, src *[16]byte) {
	decryptBlockAsm(dst, src, &e.decKS, e.nr)
}
