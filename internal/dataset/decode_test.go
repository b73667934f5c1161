// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package dataset

import (
	"strings"
	"testing"
)

// ===== Encoding Fallback =====

func TestDecodeTextUTF8(t *testing.T) {
	got, err := DecodeText([]byte("Quantité,Prix\nThé vert,12.50"))
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if !strings.Contains(got, "Quantité") {
		t.Errorf("utf-8 passthrough mangled: %q", got)
	}
}

func TestDecodeTextStripsBOM(t *testing.T) {
	got, err := DecodeText(append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Price")...))
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "Date,Price" {
		t.Errorf("BOM not stripped: %q", got)
	}
}

func TestDecodeTextLatin1(t *testing.T) {
	// "Thé" with é as the Latin-1 byte 0xE9; no 0x80-0x9F bytes present.
	got, err := DecodeText([]byte{'T', 'h', 0xE9})
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if got != "Thé" {
		t.Errorf("latin-1 decode = %q, want Thé", got)
	}
}

func TestDecodeTextWindows1252(t *testing.T) {
	// 0x80 is the euro sign in Windows-1252 but a control byte in Latin-1.
	got, err := DecodeText([]byte{0x80, '9', ',', '9', '9'})
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if !strings.HasPrefix(got, "€") {
		t.Errorf("windows-1252 decode = %q, want euro prefix", got)
	}
}
