package gost

import (
	"math/big"
	"sync"
	"sync/atomic"
)

// schedule is everything derived from a key and an s-box.
// It is never modified after being published.
type schedule struct {
	key     Key
	subkeys SubkeySet
	sbox    *SBox
	enc     [rounds]uint32
	dec     [rounds]uint32
}

func newSchedule(key Key, sbox *SBox) *schedule {
	ks := DeriveSubkeys(key)
	return &schedule{
		key:     key,
		subkeys: ks,
		sbox:    sbox,
		enc:     encryptOrder(ks),
		dec:     decryptOrder(ks),
	}
}

// Cipher encrypts and decrypts single 64 bit blocks.
//
// All methods are safe for concurrent use. SetKey and SetSBox compute the
// complete new schedule first and publish it in one step; a concurrent
// Encrypt or Decrypt sees either the old or the new one.
//
// A Cipher must be created with New or NewFromTable; the zero value
// has no schedule and its methods panic.
type Cipher struct {
	// mu serializes writers; readers only load sched.
	mu    sync.Mutex
	sched atomic.Pointer[schedule]
}

// New returns a cipher for `key` using the substitution table `sbox`.
func New(key Key, sbox *SBox) (*Cipher, error) {
	if sbox == nil {
		return nil, &ShapeError{Row: -1}
	}

	c := &Cipher{}
	c.sched.Store(newSchedule(key, sbox))
	return c, nil
}

const errNoSchedule = "gost: Cipher not created with New"

func (c *Cipher) load() *schedule {
	s := c.sched.Load()
	if s == nil {
		panic(errNoSchedule)
	}

	return s
}

// NewFromTable is like New, but validates a raw table first.
func NewFromTable(key Key, table [][]uint8) (*Cipher, error) {
	sbox, err := NewSBox(table)
	if err != nil {
		return nil, err
	}

	return New(key, sbox)
}

// Encrypt runs the encryption network over `block`.
func (c *Cipher) Encrypt(block uint64) uint64 {
	s := c.load()
	return network(s.sbox, &s.enc, block)
}

// Decrypt runs the decryption network over `block`.
func (c *Cipher) Decrypt(block uint64) uint64 {
	s := c.load()
	return network(s.sbox, &s.dec, block)
}

var maxBlock = new(big.Int).SetUint64(^uint64(0))

func blockFromInt(n *big.Int) (uint64, error) {
	if n == nil || n.Sign() < 0 || n.Cmp(maxBlock) > 0 {
		return 0, &RangeError{What: "block", Value: n.String()}
	}

	return n.Uint64(), nil
}

// EncryptInt is Encrypt for callers that carry blocks as arbitrary
// precision integers. Anything outside [0, 2^64-1] is rejected.
func (c *Cipher) EncryptInt(n *big.Int) (*big.Int, error) {
	block, err := blockFromInt(n)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(c.Encrypt(block)), nil
}

// DecryptInt is the counterpart of EncryptInt.
func (c *Cipher) DecryptInt(n *big.Int) (*big.Int, error) {
	block, err := blockFromInt(n)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(c.Decrypt(block)), nil
}

// SetKey replaces the master key and rederives all subkeys.
func (c *Cipher) SetKey(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sched.Store(newSchedule(key, c.load().sbox))
}

// SetSBox replaces the substitution table.
func (c *Cipher) SetSBox(sbox *SBox) error {
	if sbox == nil {
		return &ShapeError{Row: -1}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sched.Store(newSchedule(c.load().key, sbox))
	return nil
}

// Key returns the current master key.
func (c *Cipher) Key() Key {
	return c.load().key
}

// SBox returns the current substitution table.
func (c *Cipher) SBox() *SBox {
	return c.load().sbox
}

// Subkeys returns the subkeys derived from the current key.
func (c *Cipher) Subkeys() SubkeySet {
	return c.load().subkeys
}
