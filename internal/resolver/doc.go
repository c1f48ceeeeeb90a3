// Package resolver trims a list of dataset paths to one file per
// (model, experiment, realization, grid) identity.
//
// Paths are sorted, parsed by [naming.Parse] and grouped by identity.
// Singleton groups pass through without touching the filesystem. Larger
// groups are settled by the most recent creation date and, when dates
// tie, by the version ordinal of [VersionOrdinal]; remaining ties go to
// the lexicographically last path.
//
// Any malformed filename or unreadable candidate aborts the whole call:
// the result is either complete or absent.
package resolver
