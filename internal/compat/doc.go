// Package compat decides whether a candidate part fits the parts already chosen in a build.
//
// Every predicate is pure. A dependency that has not been chosen yet never
// disqualifies a candidate, and an unknown physical dimension skips the check
// it would take part in.
package compat
