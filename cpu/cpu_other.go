//go:build !amd64

package cpu

// Probe always reports no relevant features outside amd64: the AES-NI
// engine in this module is amd64-only, so the dispatcher is expected
// to fall back to the bitsliced engine unconditionally here.
func Probe() Features {
	return Features{}
}
