// Package exportsink stores export files downloaded from the server, either
// in a local directory or in an S3-compatible bucket.
package exportsink

import "context"

// Sink stores one export and returns where it went (a path or s3:// URL).
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}
