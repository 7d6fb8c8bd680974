// Package towels answers whether a striped design can be assembled from an
// unlimited supply of towel patterns, and in how many distinct ways.
//
// Both questions reduce to a recursion over design suffixes: the number of
// arrangements of s is the sum, over every pattern p that prefixes s, of the
// arrangements of s[len(p):]. Suffixes repeat heavily, so results are kept in
// a memo.Cache keyed by the suffix itself.
//
// Complexity: O(L²·P) per design of length L with P patterns, amortized
// across designs that share suffixes through one cache.
package towels
