// Package cpu exposes the small set of x86 feature bits the aes-c
// dispatcher needs to pick a backend. It is deliberately narrower than
// golang.org/x/sys/cpu: callers that need more should depend on that
// package directly.
package cpu

// Features is a snapshot of the CPU capabilities relevant to AES
// backend selection. It is a plain value, never cached or mutated:
// call Probe whenever a fresh reading is needed.
type Features struct {
	SSE       bool
	SSE2      bool
	SSSE3     bool
	PCLMULQDQ bool
	AES       bool
}

// HasAESNI reports whether every feature the AES-NI engine requires is
// present: SSE, SSE2, SSSE3 and AES. SSSE3 is part of the required set
// even though the AES-NI engine's assembly issues no SSSE3 instruction.
func (f Features) HasAESNI() bool {
	return f.SSE && f.SSE2 && f.SSSE3 && f.AES
}
