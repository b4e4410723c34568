package gost

import "strconv"

const (
	sboxRows = 8
	sboxCols = 16
)

// SBox is a validated 8x16 substitution table.
// Row i replaces the nibble at bits [4i, 4i+3] of a 32 bit word.
// An SBox is immutable once created and safe for concurrent use.
type SBox struct {
	rows [sboxRows][sboxCols]uint8

	// Pairs of rows fused into byte wide tables, already shifted
	// to their position in the output word.
	lookup [sboxRows / 2][256]uint32
}

// NewSBox validates `table` and precomputes its lookup tables.
// The shape is checked before any cell, so a ragged table always
// yields a *ShapeError even if it also contains bad values.
func NewSBox(table [][]uint8) (*SBox, error) {
	if len(table) != sboxRows {
		return nil, &ShapeError{Rows: len(table), Row: -1}
	}

	for idx, row := range table {
		if len(row) != sboxCols {
			return nil, &ShapeError{Rows: len(table), Row: idx, Cols: len(row)}
		}
	}

	sb := &SBox{}
	for idx, row := range table {
		for col, val := range row {
			if val > 0xF {
				return nil, &RangeError{
					What:  "s-box cell [" + strconv.Itoa(idx) + "][" + strconv.Itoa(col) + "]",
					Value: strconv.Itoa(int(val)),
				}
			}

			sb.rows[idx][col] = val
		}
	}

	sb.expand()
	return sb, nil
}

// MustSBox is like NewSBox but panics on invalid tables.
// Only meant for tables that are known to be correct at compile time.
func MustSBox(table [][]uint8) *SBox {
	sb, err := NewSBox(table)
	if err != nil {
		panic(err)
	}

	return sb
}

func (sb *SBox) expand() {
	for k := range sb.lookup {
		lo, hi := sb.rows[2*k], sb.rows[2*k+1]
		for i := 0; i < 256; i++ {
			v := uint32(lo[i&0xF]) | uint32(hi[i>>4])<<4
			sb.lookup[k][i] = v << (8 * uint(k))
		}
	}
}

// Rows returns a copy of the table.
func (sb *SBox) Rows() [sboxRows][sboxCols]uint8 {
	return sb.rows
}

// Table returns the table as slices, suitable for NewSBox.
func (sb *SBox) Table() [][]uint8 {
	table := make([][]uint8, sboxRows)
	for idx := range sb.rows {
		table[idx] = append([]uint8(nil), sb.rows[idx][:]...)
	}

	return table
}

// Substitute replaces every nibble of `t` by its table entry.
func (sb *SBox) Substitute(t uint32) uint32 {
	return sb.lookup[0][t&0xFF] |
		sb.lookup[1][(t>>8)&0xFF] |
		sb.lookup[2][(t>>16)&0xFF] |
		sb.lookup[3][t>>24]
}
