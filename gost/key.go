package gost

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
)

const (
	// KeySize is the size of the master key in bytes.
	KeySize = 32

	numSubkeys = 8
)

// Key is the 256 bit master key, stored as big endian integer.
// Key[31] holds the least significant byte.
type Key [KeySize]byte

// SubkeySet holds the round subkeys K0..K7.
// K0 are the least significant 32 bits of the key, K7 the most significant.
type SubkeySet [numSubkeys]uint32

var maxKey = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*KeySize), big.NewInt(1))

// DeriveSubkeys splits `key` into its eight 32 bit words.
// Ki is (key >> 32*i) & 0xFFFFFFFF.
func DeriveSubkeys(key Key) SubkeySet {
	var ks SubkeySet
	for i := range ks {
		off := KeySize - 4*(i+1)
		ks[i] = binary.BigEndian.Uint32(key[off : off+4])
	}

	return ks
}

// KeyFromInt converts a non-negative integer of at most 256 bits to a Key.
func KeyFromInt(n *big.Int) (Key, error) {
	var key Key
	if n == nil || n.Sign() < 0 || n.Cmp(maxKey) > 0 {
		return key, &RangeError{What: "key", Value: n.String()}
	}

	n.FillBytes(key[:])
	return key, nil
}

// KeyFromHex parses up to 64 hex digits, optionally prefixed with a
// single "0x" or "0X".
// Shorter inputs are treated as numbers and padded with leading zeros.
func KeyFromHex(s string) (Key, error) {
	var key Key

	digits := s
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits = s[2:]
	}

	if len(digits) == 0 || len(digits) > 2*KeySize {
		return key, &RangeError{What: "key", Value: s}
	}

	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return key, &RangeError{What: "key", Value: s}
	}

	copy(key[KeySize-len(raw):], raw)
	return key, nil
}

// Int returns the numeric value of the key.
func (k Key) Int() *big.Int {
	return new(big.Int).SetBytes(k[:])
}

// String returns the key as 64 hex digits.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
