// Package workflow drives a full ixmatch run: discover capture files in the
// two channel directories, pair them by timestamp, and set aside unmatched
// and empty files.
//
// Run is fail-fast with no partial commits: every discovery and parse step
// completes before the first rename, so a malformed filename aborts the run
// with the filesystem untouched. Dry runs compute the full summary and move
// nothing. Revert undoes a previous run by moving files out of the
// sorted-output subdirectories back into their channel directory.
package workflow
