// Package asset defines the descriptor returned by the asset store for an uploaded image.
package asset

import "time"

// Descriptor describes an uploaded asset. It is persisted verbatim on the
// owning record and returned to clients as-is.
type Descriptor struct {
	// ID is the storage identifier (object key) of the asset.
	ID string `json:"id"`
	// URL is the public URL clients use to fetch the asset.
	URL string `json:"url"`
	// Bucket is the storage container holding the asset.
	Bucket string `json:"bucket"`
	// ContentType is the sniffed MIME type of the uploaded bytes.
	ContentType string `json:"content_type"`
	// Bytes is the size of the asset.
	Bytes int64 `json:"bytes"`
	// OriginalFilename is the client-supplied file name, if any.
	OriginalFilename string `json:"original_filename,omitempty"`
	// ETag is the entity tag reported by the storage backend.
	ETag string `json:"etag,omitempty"`
	// CreatedAt is the upload time.
	CreatedAt time.Time `json:"created_at"`
}
