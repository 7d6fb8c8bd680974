// Package memo provides an explicit memoization table for recursive searches.
//
// The table is a plain map owned by the caller and threaded through the
// recursion, so its lifetime and key shape are visible at the call site
// instead of hidden behind a decorator. A Cache is not safe for concurrent use.
//
// Recursive use is expected: fn passed to Do may itself call Do on the same
// cache for smaller subproblems. A key is stored only after its fn returns,
// so fn must never ask for its own key again.
package memo
