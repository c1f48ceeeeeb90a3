// Package naming parses climate-model dataset filenames into identity
// records.
//
// A filename's basename is split on dots and classified into one of the
// archive dialects by [Classify]:
//
//   - Legacy: cmip5.<model>.<experiment>.<realization>.….ver-<version>.….xml
//   - ArchiveGen5: CMIP5.<activity>.<experiment>.<institution>.<model>.<realization>.….<grid>.<version>.…
//   - ArchiveGen6: as ArchiveGen5 with a CMIP6 suite and a forcing index on the realization.
//
// Each dialect carries its own field-index table and realization pattern
// (see [Dialects]). [Parse] returns a [FileRecord] or a [*ParseError] whose
// Kind is [ErrUnknownDialect] or [ErrInvalidRealization].
package naming
