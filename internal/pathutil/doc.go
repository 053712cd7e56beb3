// Package pathutil provides the path normalization rules shared by File paths,
// bases, working directories and symlink targets.
//
// All functions are pure and safe for concurrent use.
package pathutil
