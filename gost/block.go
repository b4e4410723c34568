package gost

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the block size of the cipher in bytes.
const BlockSize = 8

type blockCipher struct {
	c *Cipher
}

// NewCipher returns the cipher as crypto/cipher.Block for a raw 32 byte
// key. The key bytes are read as big endian integer, like Key.
func NewCipher(key []byte, sbox *SBox) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	var k Key
	copy(k[:], key)

	c, err := New(k, sbox)
	if err != nil {
		return nil, err
	}

	return c.Block(), nil
}

// Block wraps `c` as crypto/cipher.Block. Bytes 0..3 of a block are the
// left half, bytes 4..7 the right half, both big endian.
// Key changes on `c` are visible through the returned Block.
func (c *Cipher) Block() cipher.Block {
	return blockCipher{c: c}
}

func (b blockCipher) BlockSize() int {
	return BlockSize
}

func (b blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}

	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}

	binary.BigEndian.PutUint64(dst, b.c.Encrypt(binary.BigEndian.Uint64(src)))
}

func (b blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}

	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}

	binary.BigEndian.PutUint64(dst, b.c.Decrypt(binary.BigEndian.Uint64(src)))
}
