// Package quickcdc splits an in-memory buffer into content-defined chunks
// using the asymmetric extremum (AE) algorithm with a salted comparison.
//
// # Overview
//
// Boundaries depend on local content rather than fixed offsets, so identical
// regions produce identical chunks regardless of surrounding insertions or
// deletions. Two changes to plain AE are made:
//   - A caller-supplied 64-bit salt is mixed into every comparison, so the same
//     data processed with a different salt yields different cutpoints.
//   - The scan warps forward to a derived minimum size, skipping positions
//     where a cutpoint can never occur.
//
// # Quick Start
//
//	c, err := quickcdc.New(data, 128_000, 524_288, quickcdc.RandomSalt())
//	if err != nil {
//	    return err
//	}
//	for chunk := range c.All() {
//	    // chunk aliases data
//	}
//
// For callers managing their own offsets, Params.Cutpoint returns the length
// of the next chunk without any session state.
//
// # Parameters
//
// From a target size T and a maximum size M (M >= 2T, T >= 64):
//   - targetWindow = T / (e - 1), truncated
//   - window size  = targetWindow * 0.56, truncated
//   - minimum size = T - targetWindow
//
// The maximum size is a hard ceiling on every chunk. The minimum size only
// controls where scanning starts; the final chunk of a buffer may be shorter.
//
// # Thread Safety
//
// A Chunker holds a cursor and must not be driven from several goroutines at
// once. Independent Chunkers over the same read-only buffer can run in
// parallel. The buffer is borrowed, never copied: it must stay valid and
// unmodified while a Chunker or any chunk returned by it is in use.
package quickcdc
