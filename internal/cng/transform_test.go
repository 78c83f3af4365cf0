// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cng

import (
	"bytes"
	"testing"
)

func TestTransformInvolution(t *testing.T) {
	// Cover every byte value plus a longer mixed buffer.
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	long := bytes.Repeat([]byte{0x10, 0xD8, 0x00, 0xFF, 0x7A}, 1000)

	for _, input := range [][]byte{nil, {}, {0x00}, all, long} {
		once := Transform(input)
		twice := Transform(once)
		if !bytes.Equal(twice, input) {
			t.Errorf("Transform applied twice did not restore input of length %d", len(input))
		}
	}
}

func TestTransformKnownBytes(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0x10, 0xFF}, // obfuscated JPEG SOI lead byte
		{0x37, 0xD8}, // obfuscated JPEG SOI second byte
		{0x00, 0xEF},
		{0xEF, 0x00},
		{0xFF, 0x10},
	}
	for _, tt := range tests {
		got := Transform([]byte{tt.in})
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Transform(0x%02X) = %v, want [0x%02X]", tt.in, got, tt.want)
		}
	}
}

func TestTransformLeavesInputAlone(t *testing.T) {
	input := []byte{1, 2, 3, 4}
	saved := append([]byte(nil), input...)

	out := Transform(input)

	if !bytes.Equal(input, saved) {
		t.Error("Transform modified its input")
	}
	if len(out) != len(input) {
		t.Errorf("output length = %d, want %d", len(out), len(input))
	}
	if bytes.Equal(out, input) {
		t.Error("output should differ from input for nonzero key")
	}
}

func TestCheckSignature(t *testing.T) {
	tests := []struct {
		name    string
		decoded []byte
		wantErr bool
	}{
		{name: "jpeg lead byte", decoded: []byte{0xFF, 0xD8, 0xFF, 0xE0}, wantErr: false},
		{name: "wrong lead byte", decoded: []byte{0x89, 0x50, 0x4E, 0x47}, wantErr: true},
		{name: "empty", decoded: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSignature(tt.decoded)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckSignature error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
