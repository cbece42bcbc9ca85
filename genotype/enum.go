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
package genotype

import (
	"github.com/pkg/errors"
)

// Counts maps each nucleotide code to the number of read bases observed for
// it at one site.
type Counts [NumNt]int

// Total returns the read depth represented by c.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// NumCompositions returns the number of distinct count vectors for n reads,
// i.e. the number of weak compositions of n into 4 parts: C(n+3, 3).
func NumCompositions(n int) int {
	return (n + 1) * (n + 2) * (n + 3) / 6
}

// EnumCounts enumerates every count vector realizable by a read string of
// length n.  The order is fixed: the A count varies outermost from n down
// to 0, then C, then G, with T taking the remainder, so enumeration order
// follows the nucleotide order and downstream tensors align positionally.
func EnumCounts(n int) ([]Counts, error) {
	if n < 0 {
		return nil, errors.Errorf("genotype: negative read length %d", n)
	}
	out := make([]Counts, 0, NumCompositions(n))
	for a := n; a >= 0; a-- {
		for c := n - a; c >= 0; c-- {
			for g := n - a - c; g >= 0; g-- {
				out = append(out, Counts{a, c, g, n - a - c - g})
			}
		}
	}
	return out, nil
}
