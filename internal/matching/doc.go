// Package matching joins two capture channels by acquisition time and
// classifies the resulting pairs against a delta threshold.
//
// Join performs a greedy one-to-one nearest-neighbor assignment: the shorter
// channel drives the lookups and every frame of the longer channel receives
// exactly one output slot. Matched and Unmatched then split the joined result
// into the frame sets a caller moves or leaves in place.
//
// The functions here are pure; they hold indices into the caller's
// collections and perform no I/O.
package matching
