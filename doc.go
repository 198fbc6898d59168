// Package aesc implements AES-128/192/256 in ECB, CBC and CTR modes,
// dispatching at Init time between a portable constant-time bitsliced
// software engine (package bitslice) and an AES-NI hardware engine
// (package aesni) depending on what the running CPU supports.
//
// The package performs no I/O and no heap allocation on any encrypt or
// decrypt path; a Context is a plain value that can be embedded,
// copied before Init, and used concurrently for reads (concurrent
// mode operations) once Init has returned, provided callers don't
// write to the same output buffer from two goroutines at once.
//
// Authenticated modes (GCM/CCM), padding, key/IV generation and
// higher-level framing are out of scope; callers build those on top
// of the primitives here.
package aesc
