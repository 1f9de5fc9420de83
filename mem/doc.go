// Package mem provides the core data model shared by all memory macros: the
// fixed-width data word, the word-addressable backing store, the
// write-forwarding policies, the validated macro configuration, and the
// initial-content loader.
package mem
