// Package batch reduces many independent rule sets concurrently.
//
// The reducers in package reduce sort their input in place and share no
// state, so rule sets can be processed in parallel as long as no two workers
// touch the same buffer. Reduce clones every set before handing it to a
// worker; the caller's slices are never modified.
//
// Parallelism is bounded by an errgroup limit. The first failing set cancels
// the remaining work and its error is returned wrapped with the set index.
package batch
