package gost

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ShapeError is returned when a substitution table is not exactly
// 8 rows of 16 columns.
type ShapeError struct {
	// Rows is the number of rows that were passed.
	Rows int

	// Row is the index of the first row with a wrong length,
	// or -1 if the row count itself was wrong.
	Row int

	// Cols is the length of the offending row.
	Cols int
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("gost: s-box needs %d rows, got %d", sboxRows, e.Rows)
	}

	return fmt.Sprintf("gost: s-box row %d needs %d columns, got %d", e.Row, sboxCols, e.Cols)
}

// RangeError is returned when a value does not fit into the width it
// is supposed to have: an s-box cell above 15, a block above 2^64-1 or
// a key above 2^256-1.
type RangeError struct {
	What  string
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gost: %s out of range: %s", e.What, e.Value)
}

// KeySizeError is returned by NewCipher for keys that are not 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "gost: invalid key size " + strconv.Itoa(int(k))
}

// IsShapeError checks if `err` (or its cause) is a *ShapeError.
func IsShapeError(err error) bool {
	_, ok := errors.Cause(err).(*ShapeError)
	return ok
}

// IsRangeError checks if `err` (or its cause) is a *RangeError.
func IsRangeError(err error) bool {
	_, ok := errors.Cause(err).(*RangeError)
	return ok
}
