//go:build !amd64

package aesni

const available = false

func expandKey128(encKS *[15][16]byte, key *[16]byte)  {}
func expandKey192(encKS *[15][16]byte, key *[24]byte)  {}
func expandKey256(encKS *[15][16]byte, key *[32]byte)  {}
func aesimc(dst, src *[16]byte)                        {}
func encryptBlockAsm(dst, src *[16]byte, ks *[15][16]byte, nr int) {}
func decryptBlockAsm(dst, src *[16]byte, ks *[15][16]byte, nr int) {}
