// Package scan discovers channel directories and capture files on disk.
//
// DirByPattern resolves a channel root by matching the immediate
// subdirectories of a base directory against a glob, optionally folding
// case. Files enumerates capture files below a root recursively, following
// symbolic links, with a case-sensitive extension match.
//
// Absence is not an error here: a root with no matching files yields an
// empty slice. Only an unreadable directory or an unresolvable pattern
// fails.
package scan
