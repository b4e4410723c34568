package defaults

import (
	"fmt"

	"github.com/sahib/config"
	"github.com/sahib/gostcrypt/gost"
	"github.com/sahib/gostcrypt/gost/params"
)

// SBoxFromFile is the value of cipher.sbox that selects cipher.sbox_file.
const SBoxFromFile = "file"

func keyValidator(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("key is not a string: %v", val)
	}

	if s == "" {
		return nil
	}

	_, err := gost.KeyFromHex(s)
	return err
}

func sboxValidator(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("sbox is not a string: %v", val)
	}

	if s == SBoxFromFile {
		return nil
	}

	_, err := params.ByName(s)
	return err
}

// DefaultsV0 is the default config validation for gostcrypt
var DefaultsV0 = config.DefaultMapping{
	"cipher": config.DefaultMapping{
		"key": config.DefaultEntry{
			Default:      "",
			NeedsRestart: false,
			Docs: `The 256 bit master key as up to 64 hex digits.

  Changing it re-derives all subkeys of the running cipher.
`,
			Validator: keyValidator,
		},
		"sbox": config.DefaultEntry{
			Default:      "test",
			NeedsRestart: false,
			Docs:         "Name of the substitution table (test, tc26-z) or »file« to read cipher.sbox_file.",
			Validator:    sboxValidator,
		},
		"sbox_file": config.DefaultEntry{
			Default:      "",
			NeedsRestart: false,
			Docs:         "Path to a YAML file with a custom 8x16 substitution table.",
		},
		"log_rotations": config.DefaultEntry{
			Default:      true,
			NeedsRestart: false,
			Docs:         "Log every key or table change (only the key fingerprint is logged).",
		},
	},
}
