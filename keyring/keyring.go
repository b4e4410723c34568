// Package keyring keeps a gost cipher in sync with its configuration.
//
// The keyring reads the master key and the substitution table from a
// config section (see the defaults package) and re-derives the cipher
// schedule whenever one of them changes. Running Encrypt/Decrypt calls
// are never disturbed by this, they see either the old or the new
// schedule.
package keyring

import (
	"encoding/hex"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sahib/config"
	"github.com/sahib/gostcrypt/defaults"
	"github.com/sahib/gostcrypt/gost"
	"github.com/sahib/gostcrypt/gost/params"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/sha3"
)

// Section is the config section the keyring reads.
const Section = "cipher"

func cipherKey(key string) string {
	return Section + "." + key
}

var (
	// ErrNoKey is returned when no master key is configured.
	ErrNoKey = errors.New("no master key configured")
)

// Keyring owns a cipher whose key and s-box follow the config.
//
// Config callbacks only mark what changed; a background goroutine reads
// the new values and applies them. sahib/config fires callbacks with its
// lock held during Reload, so reading the config from inside a callback
// would never return.
type Keyring struct {
	cfg    *config.Config
	cipher *gost.Cipher
	events []int

	keyDirty  atomic.Bool
	sboxDirty atomic.Bool

	// Only touched by the worker goroutine.
	sboxSource string

	mu        sync.Mutex
	rotations int

	notify  chan struct{}
	flushes chan chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// Fingerprint returns a short, non-secret identifier of `key`:
// the first 8 bytes of its SHA3-256 hash in hex.
func Fingerprint(key gost.Key) string {
	sum := sha3.Sum256(key[:])
	return hex.EncodeToString(sum[:8])
}

func readKey(cfg *config.Config) (gost.Key, error) {
	raw := cfg.String(cipherKey("key"))
	if raw == "" {
		return gost.Key{}, ErrNoKey
	}

	key, err := gost.KeyFromHex(raw)
	if err != nil {
		return gost.Key{}, errors.Wrap(err, "bad master key")
	}

	return key, nil
}

func readSBox(cfg *config.Config) (*gost.SBox, error) {
	name := cfg.String(cipherKey("sbox"))
	if name != defaults.SBoxFromFile {
		return params.ByName(name)
	}

	path := cfg.String(cipherKey("sbox_file"))
	if path == "" {
		return nil, errors.New("sbox is set to file, but sbox_file is empty")
	}

	return params.FromYAMLFile(path)
}

func sboxSource(cfg *config.Config) string {
	name := cfg.String(cipherKey("sbox"))
	if name != defaults.SBoxFromFile {
		return name
	}

	return name + ":" + cfg.String(cipherKey("sbox_file"))
}

// New builds a keyring from the "cipher" section of `cfg`, which must be
// the root config as returned by the defaults package. Do not pass a
// value from cfg.Section(): sections keep the memory they were created
// with, so they miss a later Reload, and they number events apart from
// their parent, so Close could remove events that belong to someone else.
func New(cfg *config.Config) (*Keyring, error) {
	key, err := readKey(cfg)
	if err != nil {
		return nil, err
	}

	sbox, err := readSBox(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load s-box")
	}

	cipher, err := gost.New(key, sbox)
	if err != nil {
		return nil, err
	}

	kr := &Keyring{
		cfg:        cfg,
		cipher:     cipher,
		sboxSource: sboxSource(cfg),
		notify:     make(chan struct{}, 1),
		flushes:    make(chan chan struct{}),
		done:       make(chan struct{}),
	}

	kr.wg.Add(1)
	go kr.loop()

	kr.events = append(
		kr.events,
		cfg.AddEvent(cipherKey("key"), kr.onKeyChange),
		cfg.AddEvent(cipherKey("sbox"), kr.onSBoxChange),
		cfg.AddEvent(cipherKey("sbox_file"), kr.onSBoxChange),
	)

	log.WithFields(log.Fields{
		"key":  Fingerprint(key),
		"sbox": cfg.String(cipherKey("sbox")),
	}).Debugf("keyring ready")
	return kr, nil
}

// The callbacks may run with the config lock held; they must not
// touch the config or block.
func (kr *Keyring) onKeyChange(cfgKey string) {
	kr.keyDirty.Store(true)
	kr.wakeup()
}

func (kr *Keyring) onSBoxChange(cfgKey string) {
	kr.sboxDirty.Store(true)
	kr.wakeup()
}

func (kr *Keyring) wakeup() {
	select {
	case kr.notify <- struct{}{}:
	default:
		// A wakeup is already pending; it will see our flag.
	}
}

func (kr *Keyring) loop() {
	defer kr.wg.Done()

	for {
		select {
		case <-kr.done:
			return
		case <-kr.notify:
			kr.apply()
		case reply := <-kr.flushes:
			kr.apply()
			close(reply)
		}
	}
}

func (kr *Keyring) apply() {
	if kr.keyDirty.Swap(false) {
		kr.applyKey()
	}

	if kr.sboxDirty.Swap(false) {
		kr.applySBox()
	}
}

func (kr *Keyring) applyKey() {
	key, err := readKey(kr.cfg)
	if err != nil {
		log.Errorf("keeping old key after config change: %v", err)
		return
	}

	old := kr.cipher.Key()
	if old == key {
		return
	}

	kr.cipher.SetKey(key)
	kr.countRotation()
	kr.logRotation("key rotated", log.Fields{
		"old": Fingerprint(old),
		"new": Fingerprint(key),
	})
}

func (kr *Keyring) applySBox() {
	source := sboxSource(kr.cfg)
	if source == kr.sboxSource {
		// Only the unused sbox_file changed.
		return
	}

	sbox, err := readSBox(kr.cfg)
	if err != nil {
		log.Errorf("keeping old s-box after config change: %v", err)
		return
	}

	if err := kr.cipher.SetSBox(sbox); err != nil {
		log.Errorf("failed to set s-box: %v", err)
		return
	}

	kr.sboxSource = source
	kr.countRotation()
	kr.logRotation("s-box replaced", log.Fields{
		"sbox": kr.cfg.String(cipherKey("sbox")),
		"key":  Fingerprint(kr.cipher.Key()),
	})
}

func (kr *Keyring) countRotation() {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	kr.rotations++
}

func (kr *Keyring) logRotation(msg string, fields log.Fields) {
	entry := log.WithFields(fields)
	if kr.cfg.Bool(cipherKey("log_rotations")) {
		entry.Info(msg)
		return
	}

	entry.Debug(msg)
}

// Flush blocks until all config changes seen so far are applied.
// It must not be called from a config callback.
func (kr *Keyring) Flush() {
	reply := make(chan struct{})
	select {
	case kr.flushes <- reply:
		<-reply
	case <-kr.done:
	}
}

// Cipher returns the live cipher. It stays the same object for the
// lifetime of the keyring; only its schedule is swapped.
func (kr *Keyring) Cipher() *gost.Cipher {
	return kr.cipher
}

// Fingerprint returns the fingerprint of the current key.
func (kr *Keyring) Fingerprint() string {
	return Fingerprint(kr.cipher.Key())
}

// Rotations returns how many key or s-box changes were applied.
// Changes that arrive while the previous one is still pending are
// applied together and may count once.
func (kr *Keyring) Rotations() int {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	return kr.rotations
}

// Close stops following the config. The cipher stays usable.
func (kr *Keyring) Close() error {
	kr.once.Do(func() {
		for _, id := range kr.events {
			kr.cfg.RemoveEvent(id)
		}

		close(kr.done)
		kr.wg.Wait()
	})

	return nil
}
