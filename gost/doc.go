// Package gost implements a 64 bit Feistel block cipher in the style of
// GOST 28147-89: a 256 bit master key split into eight 32 bit subkeys,
// 32 rounds of key mixing (XOR), nibble substitution through an 8x16
// s-box, an 11 bit left rotation and the usual half swap.
//
// Encryption walks the subkeys K0..K7 three times forward and once
// backward, decryption once forward and three times backward. The half
// swap of the last round is kept, so both directions share the same
// network and only differ in subkey order.
//
// The package only transforms single blocks. Modes of operation and
// padding are left to callers, for example via Cipher.Block() and the
// modes in crypto/cipher.
package gost
