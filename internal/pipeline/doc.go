// Package pipeline orchestrates one trim run: collect the candidate paths
// (arguments, a JSON list or a directory walk), resolve them to one file
// per identity, write the report, record the run in the catalog and log a
// summary.
package pipeline
