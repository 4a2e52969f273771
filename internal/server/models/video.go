// Package models defines server-side data models persisted in the database
// and the derived shapes assembled for API responses.
package models

import "time"

// UnknownUploader is the attribution shown when no metadata row matches a
// stored object. Kept as product behavior for out-of-band uploads and
// dangling rows.
const UnknownUploader = "Unknown"

// VideoMetadata maps an object-storage key to the uploader who created it.
// UploaderName is a snapshot taken at upload time; it does not follow
// later user renames and survives user deletion.
type VideoMetadata struct {
	// VideoKey is the object-storage key, unique per video.
	VideoKey string
	// UploaderID references the users table. The reference may dangle
	// after a user is deleted; no cascade is enforced.
	UploaderID string
	// UploaderName is the denormalized display name captured on upload.
	UploaderName string
}

// Video is assembled at read time from the object-store listing joined
// with VideoMetadata by key. It is never persisted.
type Video struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	URL          string    `json:"url"`
	Uploader     string    `json:"uploader"`
}
