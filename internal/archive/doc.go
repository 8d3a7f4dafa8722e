// Package archive packs directories into cache entries and unpacks resolved
// entries back onto disk.
//
// Both directions run fixed tar|zstd pipelines as external processes and
// relay each diagnostic line from the pipeline to the logging sink as it
// arrives. A call returns only after the streams are drained and both stages
// have exited; a non-zero exit from either stage surfaces as an operational
// error with no retry.
//
// Inspect reads an entry in-process (klauspost zstd + archive/tar) and does
// not require the external tools.
package archive
