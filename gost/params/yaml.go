package params

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sahib/gostcrypt/gost"
	yaml "gopkg.in/yaml.v2"
)

// tableDoc is the on-disk layout of a custom table:
//
//	name: my-table
//	rows:
//	  - [4, 10, 9, 2, 13, 8, 0, 14, 6, 11, 1, 12, 7, 15, 5, 3]
//	  - ...
//
// Cells are read as plain ints, so that values above 15 reach
// the range check of the s-box instead of failing in the decoder.
type tableDoc struct {
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

// LoadYAML reads a substitution table from `r`.
func LoadYAML(r io.Reader) (*gost.SBox, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := tableDoc{}
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse s-box")
	}

	table := make([][]uint8, len(doc.Rows))
	for idx, row := range doc.Rows {
		table[idx] = make([]uint8, len(row))
	}

	// Shape first, so ragged tables are reported as such:
	if _, err := gost.NewSBox(table); gost.IsShapeError(err) {
		return nil, errors.Wrapf(err, "s-box %q", doc.Name)
	}

	for idx, row := range doc.Rows {
		for col, val := range row {
			if val < 0 || val > 0xF {
				return nil, errors.Wrapf(
					&gost.RangeError{
						What:  fmt.Sprintf("s-box cell [%d][%d]", idx, col),
						Value: strconv.Itoa(val),
					},
					"s-box %q", doc.Name,
				)
			}

			table[idx][col] = uint8(val)
		}
	}

	sbox, err := gost.NewSBox(table)
	if err != nil {
		return nil, errors.Wrapf(err, "s-box %q", doc.Name)
	}

	return sbox, nil
}

// FromYAMLFile reads a substitution table from the YAML file at `path`.
func FromYAMLFile(path string) (sbox *gost.SBox, err error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open s-box file")
	}

	defer func() {
		if clErr := fd.Close(); clErr != nil && err == nil {
			err = clErr
		}
	}()

	return LoadYAML(fd)
}
