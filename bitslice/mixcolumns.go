package bitslice

// xtime multiplies every byte represented by the eight lanes by {02}
// in GF(2^8), in parallel, across all 16 byte positions: shifting bit
// i-1 into bit i, and conditionally XORing in {1b} wherever the
// outgoing high bit (lane 7) was set, exactly as AES's "xtime" does
// byte by byte, just done at every byte position simultaneously.
func xtime(s State) State {
	carry := s[7]
	return State{
		carry,
		s[0] ^ carry,
		s[1],
		s[2] ^ carry,
		s[3] ^ carry,
		s[4],
		s[5],
		s[6],
	}
}

// MixColumns applies the forward AES MixColumns transform. Each
// column's four bytes a0..a3 (rows 0..3) become:
//
//	b_r = a_r ^ tmp ^ xtime(a_r ^ a_(r+1 mod 4)),  tmp = a0^a1^a2^a3
//
// Rotating a lane right by 4 bits moves row r+1's bit into row r's
// position (row*4+column addressing, so +1 row = +4 bit positions),
// which is exactly what's needed to compute a_r ^ a_(r+1) and the
// four-way column sum for every column at once, lane-wise.
func MixColumns(s *State) {
	var d, tmp State
	for i := 0; i < 8; i++ {
		r1 := rotr16(s[i], 4)
		r2 := rotr16(s[i], 8)
		r3 := rotr16(s[i], 12)
		d[i] = s[i] ^ r1
		tmp[i] = s[i] ^ r1 ^ r2 ^ r3
	}
	xd := xtime(d)
	for i := 0; i < 8; i++ {
		s[i] ^= tmp[i] ^ xd[i]
	}
}

// InvMixColumns applies the inverse AES MixColumns transform, using
// the standard reduction to the forward transform: InvMixColumns(a) ==
// MixColumns(a ^ {t,u,t,u}) where t = {04}*(a0^a2) and u = {04}*(a1^a3)
// (GF(2^8) multiplication by {04} is xtime applied twice). Rotating a
// lane right by 8 bits pairs row r with row r+2, which places t at
// rows 0 and 2 and u at rows 1 and 3 in exactly the positions that
// need correcting.
func InvMixColumns(s *State) {
	var e State
	for i := 0; i < 8; i++ {
		e[i] = s[i] ^ rotr16(s[i], 8)
	}
	t := xtime(xtime(e))
	modified := *s
	for i := 0; i < 8; i++ {
		modified[i] ^= t[i]
	}
	MixColumns(&modified)
	*s = modified
}
