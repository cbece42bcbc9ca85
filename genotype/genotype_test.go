// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package genotype_test

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"

	"github.com/grailbio/denovo/genotype"
)

func TestNtOrder(t *testing.T) {
	expect.EQ(t, genotype.NtA, genotype.Nt(0))
	expect.EQ(t, genotype.NtC, genotype.Nt(1))
	expect.EQ(t, genotype.NtG, genotype.Nt(2))
	expect.EQ(t, genotype.NtT, genotype.Nt(3))
}

// TestNtBijection checks that char -> code -> char round-trips for all four
// bases, in both cases.
func TestNtBijection(t *testing.T) {
	for _, ch := range []byte("ACGT") {
		nt, err := genotype.NtFromChar(ch)
		assert.NoError(t, err)
		expect.EQ(t, nt.Char(), ch)
	}
	for i, ch := range []byte("acgt") {
		nt, err := genotype.NtFromChar(ch)
		assert.NoError(t, err)
		expect.EQ(t, nt, genotype.Nt(i))
	}
}

func TestNtInvalidSymbol(t *testing.T) {
	for _, ch := range []byte("NnXU -0") {
		_, err := genotype.NtFromChar(ch)
		expect.True(t, err != nil)
		expect.EQ(t, errors.Cause(err), genotype.ErrInvalidSymbol)
	}
}

// TestGenotypeBijection checks that all 16 codes produce distinct labels
// and that Parse inverts String.
func TestGenotypeBijection(t *testing.T) {
	seen := map[string]bool{}
	for g := 0; g < genotype.NumGenotype; g++ {
		gt := genotype.Genotype(g)
		label := gt.String()
		expect.False(t, seen[label])
		seen[label] = true

		expect.EQ(t, genotype.Pack(gt.First(), gt.Second()), gt)
		expect.EQ(t, int(gt.First())*genotype.NumNt+int(gt.Second()), g)

		parsed, err := genotype.Parse(label)
		assert.NoError(t, err)
		expect.EQ(t, parsed, gt)
	}
	expect.EQ(t, len(seen), genotype.NumGenotype)
}

func TestGenotypeOrder(t *testing.T) {
	tests := []struct {
		label string
		index genotype.Genotype
	}{
		{"AA", 0},
		{"AC", 1},
		{"AT", 3},
		{"CA", 4},
		{"GC", 9},
		{"TT", 15},
	}
	for _, test := range tests {
		gt, err := genotype.Parse(test.label)
		assert.NoError(t, err)
		expect.EQ(t, gt, test.index)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "A", "ACG", "AN", "ZT", "a"} {
		_, err := genotype.Parse(s)
		expect.True(t, err != nil)
		expect.EQ(t, errors.Cause(err), genotype.ErrInvalidSymbol)
	}
}

func TestEnumCounts(t *testing.T) {
	for n := 0; n <= 4; n++ {
		countsList, err := genotype.EnumCounts(n)
		assert.NoError(t, err)
		expect.EQ(t, len(countsList), genotype.NumCompositions(n))

		seen := map[genotype.Counts]bool{}
		for _, counts := range countsList {
			expect.EQ(t, counts.Total(), n)
			expect.False(t, seen[counts])
			seen[counts] = true
		}
		// The first composition is all-A, the last all-T, matching the
		// nucleotide order.
		expect.EQ(t, countsList[0], genotype.Counts{n, 0, 0, 0})
		expect.EQ(t, countsList[len(countsList)-1], genotype.Counts{0, 0, 0, n})
	}
}

func TestEnumCountsNegative(t *testing.T) {
	_, err := genotype.EnumCounts(-1)
	expect.True(t, err != nil)
}
