//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// Probe reads the current CPU's feature bits. SSE and SSE2 are part of
// the amd64 baseline ISA and are therefore unconditionally true;
// golang.org/x/sys/cpu does not even bother exposing them for that
// reason. The remaining bits come straight from cpu.X86.
func Probe() Features {
	return Features{
		SSE:       true,
		SSE2:      true,
		SSSE3:     cpu.X86.HasSSSE3,
		PCLMULQDQ: cpu.X86.HasPCLMULQDQ,
		AES:       cpu.X86.HasAES,
	}
}
