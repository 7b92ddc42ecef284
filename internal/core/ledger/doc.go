// Package ledger derives the financial views of the farm from raw records.
//
// Every function here is pure: it takes the record slices it needs and returns
// values. Nothing is cached and nothing is written back; callers recompute from
// a fresh snapshot after each write. Unknown foreign keys contribute zero.
package ledger
