// Package capture models the timestamped image files produced by a dual-head
// aerial camera rig.
//
// Each capture file encodes its acquisition instant in the first sixteen
// characters of the filename stem (yyMMdd_HHmmssSSS, millisecond precision).
// Frame parses that prefix together with the on-disk byte size, and Collection
// keeps a channel's frames sorted by timestamp so the matching layer can run
// nearest-neighbor lookups against it.
//
// Construction is all-or-nothing: a stem that fails to parse or a file whose
// metadata cannot be read aborts the whole build. Downstream code never sees
// a partially populated channel.
package capture
