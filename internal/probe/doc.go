// Package probe reads the creation date recorded in a dataset's global
// attributes.
//
// Two storage formats are supported, chosen by file extension:
//
//   - CDML (.xml): the XML catalogue written for aggregated datasets. The
//     file is streamed and closed as soon as the attribute is found.
//   - netCDF (.nc, .nc4, .cdf): read through a single `ncdump -h` call and
//     the header text parsed for the global creation_date attribute.
//
// Both encodings of the attribute value are normalised to a comparable
// [Date] by [ParseCreationDate].
package probe
