package pix

import "fmt"

// CRC-16/CCITT-FALSE: polynomial 0x1021, initial value 0xFFFF,
// no reflection, no final XOR.
const (
	crcPolynomial = uint16(0x1021)
	crcInitial    = uint16(0xFFFF)
)

var crcTable [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
		crcTable[i] = crc
	}
}

// Checksum computes the CRC-16/CCITT-FALSE of data.
func Checksum(data []byte) uint16 {
	crc := crcInitial
	for _, b := range data {
		crc = (crc << 8) ^ crcTable[byte(crc>>8)^b]
	}
	return crc
}

// CRC16 returns the checksum of s as four uppercase hex digits.
func CRC16(s string) string {
	return fmt.Sprintf("%04X", Checksum([]byte(s)))
}
