package bitslice

// Engine is the portable AES engine: round keys are kept in byte form
// (FIPS-197 column-major order) and transposed into bitslice form on
// every call, per the representation note in the package's data
// model. It performs no heap allocation and holds no pointers into
// memory outside itself, so it is trivially copyable and safe for
// concurrent read-only use once Init has returned.
type Engine struct {
	nr        int
	roundKeys [maxRoundKeys][16]byte
}

// Init computes the key schedule for a key of nk 32-bit words and nr
// rounds.
func (e *Engine) Init(key []byte, nk, nr int) {
	e.nr = nr
	ExpandKey(&e.roundKeys, key, nk, nr)
}

func (e *Engine) roundKeyState(round int) State {
	return FromBytes(&e.roundKeys[round])
}

// EncryptBlock runs the straight AES cipher: AddRoundKey(0), then
// Nr-1 full rounds, then a final round without MixColumns.
func (e *Engine) EncryptBlock(dst, src *[16]byte) {
	s := FromBytes(src)
	s.AddRoundKey(e.roundKeyState(0))
	for r := 1; r < e.nr; r++ {
		SubBytes(&s)
		ShiftRows(&s)
		MixColumns(&s)
		s.AddRoundKey(e.roundKeyState(r))
	}
	SubBytes(&s)
	ShiftRows(&s)
	s.AddRoundKey(e.roundKeyState(e.nr))
	s.ToBytes(dst)
}

// DecryptBlock runs the straight inverse cipher (not the FIPS-197
// "equivalent" inverse cipher the AES-NI engine uses): InvMixColumns
// is applied inside the loop against the same round-key schedule
// encryption uses, in reverse order.
func (e *Engine) DecryptBlock(dst, src *[16]byte) {
	s := FromBytes(src)
	s.AddRoundKey(e.roundKeyState(e.nr))
	for r := e.nr - 1; r >= 1; r-- {
		InvShiftRows(&s)
		InvSubBytes(&s)
		s.AddRoundKey(e.roundKeyState(r))
		InvMixColumns(&s)
	}
	InvShiftRows(&s)
	InvSubBytes(&s)
	s.AddRoundKey(e.roundKeyState(0))
	s.ToBytes(dst)
}
