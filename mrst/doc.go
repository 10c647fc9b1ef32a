// Package mrst builds Multiway Radix Search Trees: minimal decision trees that
// dispatch a sparse set of unsigned integer keys to their payloads using as few
// bit extractions as possible.
//
// It is the structure a code generator would use to turn a large sparse integer
// `switch` into a compact recursive lookup. At every level a discriminator maps
// a key to a bucket index and the bucket selects a child, until a single case or
// a default leaf is reached.
//
// The bit-window search follows "Efficient Multiway Radix Search Trees"
// (Erlingsson, Krishnamoorthy, Raman, 1996).
//
// Discriminators:
// --------------
//
//   - Window      (bits L to R)  - (x >> R) & (1<<(L-R+1) - 1),  2^(L-R+1) buckets
//   - LowBias     (x - B)        - B is the lowest key of a subset
//   - ClzBias     (clz(x) - B)   - B is the lowest leading-zero count of a subset
//   - TrailingZeros (ctz(x))     - buckets by the lowest set bit
//
// Every discriminator is produced by a Strategy calibrated to the key subset of
// the node it serves, so the same Strategy yields different discriminators at
// different levels.
//
// Tree shape:
// ----------
//
// A Node is either a Branch (a discriminator plus exactly Size() children,
// empty buckets filled with Default leaves) or a Leaf carrying a Marker:
//
//   - MarkerCase:    the matched key and its payload;
//   - MarkerDefault: no case maps here.
//
// Example tree for the keys 1, 2 and 3 (strategies: window, clz):
//
//	[clz(x) - 62] --+-- [bit 0] --+-- [Case 2]
//	                |             |
//	                |             `-- [Case 3]
//	                |
//	                `-- [Case 1]
//
// Build selects per node the strategy whose subtree is the shallowest one; ties
// go to the strategy listed first.
package mrst
