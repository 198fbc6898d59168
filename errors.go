package aesc

import "errors"

// ErrInvalidVariant is returned by Init when given a Variant value
// outside {AES128, AES192, AES256}. It is the one failure in this
// package reported as an error rather than a panic, since a caller
// can plausibly receive an out-of-range variant from outside its own
// code (e.g. decoding a stored config value) and should be able to
// handle that without a crash. Every other precondition violation in
// this package (length mismatches, ECB/CBC lengths that are not a
// multiple of 16) is a programmer error and panics instead.
var ErrInvalidVariant = errors.New("aesc: invalid variant")
