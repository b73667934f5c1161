// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package dataset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// utf8BOM is stripped before decoding; Excel exports routinely carry it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw upload bytes to a UTF-8 string. Seller exports
// arrive in UTF-8, Latin-1, or Windows-1252 depending on the tool that wrote
// them:
//   - valid UTF-8 is used as-is (BOM stripped)
//   - bytes in the 0x80-0x9F range mean Windows-1252 (curly quotes, euro sign)
//   - anything else decodes as Latin-1, which accepts every byte
func DecodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data), nil
	}

	cm := charmap.ISO8859_1
	for _, b := range data {
		if b >= 0x80 && b <= 0x9F {
			cm = charmap.Windows1252
			break
		}
	}

	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", cm, err)
	}
	return string(decoded), nil
}
