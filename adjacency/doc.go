// SPDX-License-Identifier: MIT

// Package adjacency expands a set of target vertices into the working set a
// relaxation session needs, and records each target's neighbor lists.
//
// What:
//
//   - First-order (1-ring) neighbors of every target, as the Provider lists them.
//   - Optionally, second-order (2-ring) neighbors: the union of the 1-rings of a
//     target's 1-ring, minus the target itself. Overlap with the 1-ring is kept.
//   - The working set: targets ∪ 1-rings (∪ 2-rings), sorted ascending.
//
// Provider calls:
//
//   - Exactly one Neighbors call, or two when WithSecondOrder is given.
//
// Errors:
//
//   - ErrProviderNil: nil Provider.
//   - ErrNoTargets: empty target list.
//   - ErrProvider: the Provider failed (wraps its error).
//   - *weights.VertexError (matches weights.ErrInvalidVertex): negative or
//     duplicate target, target missing from the Provider answer, target with
//     no 1-ring neighbors, target listing itself as neighbor, or, with
//     WithSecondOrder, a target with an empty 2-ring.
//
// Complexity:
//
//   - Time O(T·d + R·d + W log W), Memory O(W + T·d²) for T targets, mean
//     degree d, R distinct 1-ring vertices and W working vertices.
package adjacency
