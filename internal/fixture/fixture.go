// Package fixture loads binary/encoded sample pairs used by conformance tests.
//
// A sample directory holds NAME.bin with the raw payload, NAME.e<RADIX> with
// its plain encoding and NAME.ewc<RADIX> with its checksummed encoding.
package fixture

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Sample struct {
	Name  string
	Radix int
	Text  string
}

type Set struct {
	Bins             map[string][]byte
	Encodes          []Sample
	EncodesWithCheck []Sample
}

// Load reads every sample file in dir. Files with other extensions are ignored.
func Load(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	set := &Set{Bins: make(map[string][]byte)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		ext := filepath.Ext(fileName)
		name := strings.TrimSuffix(fileName, ext)

		var (
			dst    *[]Sample
			suffix string
		)
		switch {
		case ext == ".bin":
		case strings.HasPrefix(ext, ".ewc"):
			dst, suffix = &set.EncodesWithCheck, ext[4:]
		case strings.HasPrefix(ext, ".e"):
			dst, suffix = &set.Encodes, ext[2:]
		default:
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, fileName))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if dst == nil {
			set.Bins[name] = data
			continue
		}

		radix, err := strconv.Atoi(suffix)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %s: bad radix suffix", fileName)
		}
		*dst = append(*dst, Sample{Name: name, Radix: radix, Text: string(data)})
	}

	for _, samples := range [][]Sample{set.Encodes, set.EncodesWithCheck} {
		for _, s := range samples {
			if _, ok := set.Bins[s.Name]; !ok {
				return nil, errors.Errorf("sample %s.%d has no %s.bin", s.Name, s.Radix, s.Name)
			}
		}
		sortSamples(samples)
	}
	return set, nil
}

func sortSamples(samples []Sample) {
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Radix < samples[j].Radix
	})
}
