// Package logging provides implementations of the Logger interface used by
// the scanner and the vfile command.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr, optionally teeing them
//     into a size-rotated log file
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
