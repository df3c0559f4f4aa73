package domain

// UploadRequest describes one artifact shipment to the object store.
type UploadRequest struct {
	// Local is the path of the artifact on disk.
	Local string
	// Destination is the store path, e.g. "gs://bucket/app/index-3.js".
	Destination string
	// ContentType is the MIME type set on the stored object.
	ContentType string
	// CacheControl is the Cache-Control header set on the stored object.
	CacheControl string
	// PublicPrefix optionally replaces the destination's scheme and host in
	// the returned public URL.
	PublicPrefix string
}
