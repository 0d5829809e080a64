// Package dataset reads records and writes clusters as JSON lines through a
// blobstore.BlobStore.
//
// One record per line:
//
//	{"id":"r1","text":"Paris France","category":"city","entities":{"paris":1},"label":"e1"}
//
// Only "id" is required in spirit; a missing id defaults to the record's
// position. When "tokens" is absent the text is tokenized with
// lexical.Tokenize. "label" carries the gold entity used for evaluation.
//
// Blob names ending in ".zst" or ".lz4" are transparently (de)compressed
// with zstd or LZ4 frames.
package dataset
