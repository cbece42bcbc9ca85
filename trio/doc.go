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

/*Package trio computes the joint probability of observed sequencing reads
  for a mother/father/child trio under a four-layer generative model:

    population -> germline -> soma -> reads

  Layer 1 draws both parents' genotypes from a population prior.  Layer 2
  transmits one chromosome from each parent to the child, each transmitted
  allele mutating with a per-chromosome germline rate.  Layer 3 mutates each
  chromosome somatically within the individual.  Layer 4 generates read
  counts from the somatic genotype through a Dirichlet-multinomial
  sequencing-error model.

  Each layer exposes its conditional kernel as a pure function and the
  composed joint/marginal as a tensor over the dense genotype indices of
  package genotype.  Kernels are kept in linear domain (their entries are
  well away from underflow); the population prior and the final read
  probability are kept in log domain.  For every fixed conditioning context
  each conditional sums to 1 over its output axis, and each composed joint
  sums to 1 outright; Model.SelfCheck verifies all of these at once.

  All functions are deterministic and carry no state between calls: a tensor
  is a fresh pure function of the parameters and the layer below it.
*/
package trio
