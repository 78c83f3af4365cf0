// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cng implements the byte-level de-obfuscation of CNG image
// containers. A CNG file is a standard JPEG stream in which every byte has
// been XOR'd with a fixed key, so the same transform both decodes and
// re-encodes a file.
package cng

import "fmt"

// Key is the fixed obfuscation constant (239). XOR with Key is an
// involution: applying Transform twice restores the input.
const Key byte = 0xEF

// jpegSOILead is the first byte of the JPEG start-of-image marker.
const jpegSOILead byte = 0xFF

// Transform returns a new slice of the same length with every byte XOR'd
// with Key. It is total over all inputs and never fails; whether the result
// is a valid image is a separate question.
func Transform(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ Key
	}
	return out
}

// CheckSignature performs the one-byte integrity check on transformed
// output: a decoded CNG must begin with the JPEG start-of-image lead byte.
// A full decode is deferred until document assembly.
func CheckSignature(decoded []byte) error {
	if len(decoded) == 0 {
		return fmt.Errorf("empty file")
	}
	if decoded[0] != jpegSOILead {
		return fmt.Errorf("leading byte 0x%02X after transform, want 0x%02X (not an obfuscated JPEG)", decoded[0], jpegSOILead)
	}
	return nil
}
