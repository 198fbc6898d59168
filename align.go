package aesc

import (
	"unsafe"

	"github.com/krxecs/aes-c/ints"
)

// roundKeyAlignment reports whether the address of a round-key buffer
// is a multiple of 16, the alignment spec.md §3 and §9 call for on the
// grounds that it's required for SIMD aligned loads. This package's
// AES-NI assembly (asm_amd64.s) only ever issues MOVOU, the unaligned
// SSE load, specifically so correctness never depends on this — this
// helper exists to make the invariant checkable, not to gate behavior
// an unlucky stack layout could otherwise break.
func roundKeyAlignment(p unsafe.Pointer) bool {
	return ints.IsAligned64(uint64(uintptr(p)), 16)
}
