package pix

import "strings"

// IsValid reports whether payload ends with a checksum field whose value
// matches the CRC of everything before it. Hex digits compare
// case-insensitively.
func IsValid(payload string) bool {
	if len(payload) < len(crcPrefix)+4 {
		return false
	}
	body, claimed := payload[:len(payload)-4], payload[len(payload)-4:]
	if !strings.HasSuffix(body, crcPrefix) {
		return false
	}
	return strings.EqualFold(CRC16(body), claimed)
}
