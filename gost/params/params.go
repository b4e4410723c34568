// Package params provides well known substitution tables for the gost
// cipher and a loader for custom tables stored as YAML.
package params

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sahib/gostcrypt/gost"
)

var (
	// ErrNoSuchParamSet is returned by ByName for unknown names.
	ErrNoSuchParamSet = errors.New("no such parameter set")
)

// TestParamSet is id-GostR3411-94-TestParamSet from RFC 4357.
var TestParamSet = gost.MustSBox([][]uint8{
	{4, 10, 9, 2, 13, 8, 0, 14, 6, 11, 1, 12, 7, 15, 5, 3},
	{14, 11, 4, 12, 6, 13, 15, 10, 2, 3, 8, 1, 0, 7, 5, 9},
	{5, 8, 1, 13, 10, 3, 4, 2, 14, 15, 12, 7, 6, 0, 9, 11},
	{7, 13, 10, 1, 0, 8, 9, 15, 14, 4, 6, 12, 11, 2, 5, 3},
	{6, 12, 7, 1, 5, 15, 13, 8, 4, 10, 9, 14, 0, 3, 11, 2},
	{4, 11, 10, 0, 7, 2, 1, 13, 3, 6, 8, 5, 9, 12, 15, 14},
	{13, 11, 4, 1, 3, 15, 5, 9, 0, 10, 14, 7, 6, 8, 2, 12},
	{1, 15, 13, 0, 5, 7, 10, 4, 9, 2, 3, 14, 6, 11, 8, 12},
})

// TC26Z is id-tc26-gost-28147-param-Z, the table fixed by GOST R 34.12-2015.
var TC26Z = gost.MustSBox([][]uint8{
	{12, 4, 6, 2, 10, 5, 11, 9, 14, 8, 13, 7, 0, 3, 15, 1},
	{6, 8, 2, 3, 9, 10, 5, 12, 1, 14, 4, 7, 11, 13, 0, 15},
	{11, 3, 5, 8, 2, 15, 10, 13, 14, 1, 7, 4, 12, 9, 6, 0},
	{12, 8, 2, 1, 13, 4, 15, 6, 7, 0, 10, 5, 3, 14, 9, 11},
	{7, 15, 5, 10, 8, 1, 6, 13, 0, 9, 3, 14, 11, 4, 2, 12},
	{5, 13, 15, 6, 9, 2, 12, 10, 11, 7, 8, 1, 4, 3, 14, 0},
	{8, 14, 2, 5, 6, 9, 1, 12, 15, 4, 11, 0, 13, 10, 3, 7},
	{1, 7, 14, 13, 0, 5, 8, 3, 4, 15, 10, 6, 9, 12, 11, 2},
})

var byName = map[string]*gost.SBox{
	"test":   TestParamSet,
	"tc26-z": TC26Z,
}

// ByName returns the parameter set called `name` (case does not matter).
func ByName(name string) (*gost.SBox, error) {
	sbox, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrNoSuchParamSet, "%q", name)
	}

	return sbox, nil
}

// Names returns all names accepted by ByName in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// IsNoSuchParamSet checks if `err` was caused by an unknown name.
func IsNoSuchParamSet(err error) bool {
	return errors.Cause(err) == ErrNoSuchParamSet
}
