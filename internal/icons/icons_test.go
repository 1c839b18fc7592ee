package icons

import (
	"bytes"
	"testing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRegistryCoversAllSizes(t *testing.T) {
	if len(Records) != len(Sizes) {
		t.Fatalf("len(Records) = %d, want %d", len(Records), len(Sizes))
	}
	for i, rec := range Records {
		if rec.Size != Sizes[i] {
			t.Errorf("Records[%d].Size = %d, want %d", i, rec.Size, Sizes[i])
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{16, "icon-16.png"},
		{32, "icon-32.png"},
		{48, "icon-48.png"},
		{128, "icon-128.png"},
	}
	for _, tt := range tests {
		if got := FileName(tt.size); got != tt.want {
			t.Errorf("FileName(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestDecodeByteLengths(t *testing.T) {
	// Fixed lengths implied by the embedded constants after line-break
	// stripping; a change here means the data itself changed.
	want := map[int]int{16: 159, 32: 161, 48: 162, 128: 163}
	for _, rec := range Records {
		raw, err := Decode(rec.Data)
		if err != nil {
			t.Fatalf("Decode(size %d): %v", rec.Size, err)
		}
		if len(raw) != want[rec.Size] {
			t.Errorf("size %d: decoded %d bytes, want %d", rec.Size, len(raw), want[rec.Size])
		}
	}
}

func TestDecodeYieldsPNGSignature(t *testing.T) {
	for _, rec := range Records {
		raw, err := Decode(rec.Data)
		if err != nil {
			t.Fatalf("Decode(size %d): %v", rec.Size, err)
		}
		if !bytes.HasPrefix(raw, pngSignature) {
			t.Errorf("size %d: decoded data does not start with a PNG signature", rec.Size)
		}
	}
}

func TestDecodeStripsCRLF(t *testing.T) {
	raw, err := Decode("aGVs\r\nbG8=\n")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("Decode = %q, want %q", raw, "hello")
	}
}

func TestDecodeRejectsMalformedData(t *testing.T) {
	if _, err := Decode("not valid base64!!"); err == nil {
		t.Fatal("expected error for malformed base64, got nil")
	}
}
