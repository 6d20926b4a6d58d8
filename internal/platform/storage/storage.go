// Package storage uploads offer pictures to S3-compatible object storage.
package storage

import "time"

// Options conveys the upload destination.
type Options struct {
	Bucket    string
	KeyPrefix string
	// PublicBaseURL, when set, replaces the location reported by the object store
	// in the returned descriptor, e.g. a CDN in front of the bucket.
	PublicBaseURL string
}

// Clock returns the current time. Tests substitute it.
type Clock func() time.Time
