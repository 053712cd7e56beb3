// Package stream provides Cloneable, a duplication adapter that lets several
// independent readers consume one underlying io.Reader.
//
// # Semantics
//
// A Cloneable is one view over a shared hub. Clone adds another view. Every
// view observes the complete byte sequence of the source, in order, exactly
// once. No view receives data until every attached view has issued a Read
// (or has been closed): the first Read of each view joins a start barrier.
// After that, the hub pulls from the source only when a view needs bytes it
// has not buffered yet, and keeps what the slowest view still has to read.
// With a high water mark set, a view that runs that far ahead of the slowest
// one blocks until the others catch up.
//
// Views are meant to be read from separate goroutines. Reading one view to
// completion before starting another deadlocks unless the other views are
// closed first.
//
// An error returned by the source is delivered to every view once it has
// drained the bytes buffered before the error.
//
// # Example
//
//	original := stream.New(src)
//	copy, err := original.Clone()
//	if err != nil {
//	    return err
//	}
//	go io.Copy(hasher, copy)
//	io.Copy(dst, original)
package stream
