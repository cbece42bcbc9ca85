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

// Package genotype defines the fixed nucleotide and genotype enumerations
// shared by all probability tensors in this module.  Every tensor axis is
// indexed by these dense integer codes, so the order here is load-bearing
// and must never change.
package genotype

import (
	"github.com/pkg/errors"
)

// ErrInvalidSymbol is returned when a nucleotide or genotype label is not
// one of A/C/G/T.
var ErrInvalidSymbol = errors.New("genotype: invalid nucleotide symbol")

// Nt is a nucleotide code in a packed 2-bit representation.  The order
// A < C < G < T matches the .bam seq[] bit positions.
type Nt uint8

const (
	// NtA represents an A base.
	NtA Nt = iota
	// NtC represents a C base.
	NtC
	// NtG represents a G base.
	NtG
	// NtT represents a T base.
	NtT
)

const (
	// NumNt is the number of nucleotide codes.
	NumNt = 4
	// NumGenotype is the number of ordered nucleotide pairs.
	NumGenotype = NumNt * NumNt
)

var ntChars = [NumNt]byte{'A', 'C', 'G', 'T'}

var charToNt [256]uint8

const invalidNtBits = uint8(255)

func init() {
	for i := range charToNt {
		charToNt[i] = invalidNtBits
	}
	charToNt['A'] = 0
	charToNt['a'] = 0
	charToNt['C'] = 1
	charToNt['c'] = 1
	charToNt['G'] = 2
	charToNt['g'] = 2
	charToNt['T'] = 3
	charToNt['t'] = 3
}

// NtFromChar maps an ASCII base (either case) to its nucleotide code.
func NtFromChar(ch byte) (Nt, error) {
	b := charToNt[ch]
	if b == invalidNtBits {
		return 0, errors.Wrapf(ErrInvalidSymbol, "%q", string(ch))
	}
	return Nt(b), nil
}

// Char returns the upper-case ASCII base for n.
func (n Nt) Char() byte {
	return ntChars[n]
}

// String returns the upper-case base letter for n.
func (n Nt) String() string {
	return string(ntChars[n])
}

// Genotype is an ordered pair of nucleotide codes packed as
// 4*first + second.  The pair is biologically unphased, but the order is
// fixed so that the 16 genotypes form a dense tensor axis; by convention
// the first position holds the maternally inherited chromosome.
type Genotype uint8

// Pack combines two nucleotide codes into a genotype code.
func Pack(first, second Nt) Genotype {
	return Genotype(first)*NumNt + Genotype(second)
}

// First returns the nucleotide on the first chromosome.
func (g Genotype) First() Nt {
	return Nt(g / NumNt)
}

// Second returns the nucleotide on the second chromosome.
func (g Genotype) Second() Nt {
	return Nt(g % NumNt)
}

// String returns the two-letter genotype label, e.g. "AC".
func (g Genotype) String() string {
	return string([]byte{g.First().Char(), g.Second().Char()})
}

// Parse maps a two-letter genotype label back to its code.
func Parse(s string) (Genotype, error) {
	if len(s) != 2 {
		return 0, errors.Wrapf(ErrInvalidSymbol, "genotype %q", s)
	}
	first, err := NtFromChar(s[0])
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSymbol, "genotype %q", s)
	}
	second, err := NtFromChar(s[1])
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSymbol, "genotype %q", s)
	}
	return Pack(first, second), nil
}
