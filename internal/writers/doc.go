// Package writers resolves output targets and stores rendered documents.
//
// A target is "-" (stdout, streamed), a local path (written atomically),
// or s3://bucket/key. Multi-file tools use Target.Dir.
package writers
