package params

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sahib/gostcrypt/gost"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	sbox, err := ByName("test")
	require.Nil(t, err)
	require.Equal(t, TestParamSet, sbox)

	sbox, err = ByName("TC26-Z")
	require.Nil(t, err)
	require.Equal(t, TC26Z, sbox)

	sbox, err = ByName("cryptopro-b")
	require.Nil(t, sbox)
	require.True(t, IsNoSuchParamSet(err))
	require.Contains(t, err.Error(), "cryptopro-b")
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"tc26-z", "test"}, Names())
	for _, name := range Names() {
		_, err := ByName(name)
		require.Nil(t, err)
	}
}

// Both shipped tables use a permutation in every row.
func TestParamSetsArePermutations(t *testing.T) {
	for _, sbox := range []*gost.SBox{TestParamSet, TC26Z} {
		for idx, row := range sbox.Rows() {
			seen := make(map[uint8]bool)
			for _, val := range row {
				seen[val] = true
			}

			require.Len(t, seen, 16, "row %d", idx)
		}
	}
}

const validDoc = `
name: demo
rows:
  - [4, 10, 9, 2, 13, 8, 0, 14, 6, 11, 1, 12, 7, 15, 5, 3]
  - [14, 11, 4, 12, 6, 13, 15, 10, 2, 3, 8, 1, 0, 7, 5, 9]
  - [5, 8, 1, 13, 10, 3, 4, 2, 14, 15, 12, 7, 6, 0, 9, 11]
  - [7, 13, 10, 1, 0, 8, 9, 15, 14, 4, 6, 12, 11, 2, 5, 3]
  - [6, 12, 7, 1, 5, 15, 13, 8, 4, 10, 9, 14, 0, 3, 11, 2]
  - [4, 11, 10, 0, 7, 2, 1, 13, 3, 6, 8, 5, 9, 12, 15, 14]
  - [13, 11, 4, 1, 3, 15, 5, 9, 0, 10, 14, 7, 6, 8, 2, 12]
  - [1, 15, 13, 0, 5, 7, 10, 4, 9, 2, 3, 14, 6, 11, 8, 12]
`

func TestLoadYAML(t *testing.T) {
	sbox, err := LoadYAML(strings.NewReader(validDoc))
	require.Nil(t, err)
	require.Equal(t, TestParamSet.Rows(), sbox.Rows())
}

func TestLoadYAMLRagged(t *testing.T) {
	doc := strings.Replace(validDoc, "5, 3]", "5]", 1)
	_, err := LoadYAML(strings.NewReader(doc))
	require.True(t, gost.IsShapeError(err))
	require.Contains(t, err.Error(), `"demo"`)

	lines := strings.Split(strings.TrimSpace(validDoc), "\n")
	_, err = LoadYAML(strings.NewReader(strings.Join(lines[:len(lines)-1], "\n")))
	require.True(t, gost.IsShapeError(err))
}

func TestLoadYAMLRange(t *testing.T) {
	for _, bad := range []string{"19", "-1", "256"} {
		doc := strings.Replace(validDoc, "[4, 10, 9", "[4, "+bad+", 9", 1)
		_, err := LoadYAML(strings.NewReader(doc))
		require.True(t, gost.IsRangeError(err), "value %s: %v", bad, err)
		require.Contains(t, err.Error(), "[0][1]")
	}
}

// A ragged table with bad values is still reported as shape error.
func TestLoadYAMLShapeBeforeRange(t *testing.T) {
	doc := strings.Replace(validDoc, "[4, 10, 9", "[4, 19, 9", 1)
	doc = strings.Replace(doc, "5, 3]", "5]", 1)
	_, err := LoadYAML(strings.NewReader(doc))
	require.True(t, gost.IsShapeError(err))
}

func TestLoadYAMLGarbage(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("rows: {a: b}"))
	require.NotNil(t, err)

	_, err = LoadYAML(strings.NewReader(validDoc + "extra: 1\n"))
	require.NotNil(t, err)
	require.False(t, gost.IsShapeError(err))
}

func TestFromYAMLFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "gost-params-test")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "sbox.yml")
	require.Nil(t, ioutil.WriteFile(path, []byte(validDoc), 0600))

	sbox, err := FromYAMLFile(path)
	require.Nil(t, err)
	require.Equal(t, TestParamSet.Table(), sbox.Table())

	_, err = FromYAMLFile(filepath.Join(dir, "missing.yml"))
	require.NotNil(t, err)
}
