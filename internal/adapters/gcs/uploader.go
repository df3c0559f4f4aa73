// Package gcs implements the object-store uploader on the gsutil CLI.
package gcs

import (
	"context"
	"path"
	"strings"
	"time"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Uploader = (*Uploader)(nil)

const defaultRetryDelay = 2 * time.Second

// Uploader implements ports.Uploader by shelling out to gsutil through the
// command runner, so store calls count against the global gate.
type Uploader struct {
	runner     ports.CommandRunner
	logger     ports.Logger
	retryDelay time.Duration
}

// NewUploader creates a new Uploader.
func NewUploader(runner ports.CommandRunner, logger ports.Logger) *Uploader {
	return &Uploader{
		runner:     runner,
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}
}

// SetRetryDelay overrides the fixed delay between metadata/ACL retries.
func (u *Uploader) SetRetryDelay(d time.Duration) {
	if d > 0 {
		u.retryDelay = d
	}
}

// Upload stores the artifact compressed, sets metadata, grants public read
// and returns the public URL. A pre-existing object at the destination is
// treated as a leftover of an interrupted run and skipped; metadata and ACL
// calls are retried indefinitely with a fixed delay.
func (u *Uploader) Upload(ctx context.Context, req domain.UploadRequest) (string, error) {
	ext := strings.TrimPrefix(path.Ext(req.Destination), ".")

	_, stderr, err := u.runner.Run(ctx, "", "gsutil", "cp", "-z", ext, req.Local, req.Destination)
	if err != nil {
		if !isBenignConflict(stderr) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrUploadFailed.Error()), "dest", req.Destination)
		}
		u.logger.Warn("object already exists, keeping previous upload: " + req.Destination)
	}

	meta := []string{
		"setmeta",
		"-h", "Cache-Control:" + req.CacheControl,
		"-h", "Content-Encoding:gzip",
		"-h", "Content-Type:" + req.ContentType,
		req.Destination,
	}
	if err := u.retryForever(ctx, "setmeta", meta); err != nil {
		return "", err
	}

	acl := []string{"acl", "ch", "-u", "AllUsers:R", req.Destination}
	if err := u.retryForever(ctx, "acl", acl); err != nil {
		return "", err
	}

	return publicURL(req.Destination, req.PublicPrefix), nil
}

// retryForever runs the gsutil subcommand until it succeeds. Fixed delay, no
// attempt cap, no backoff; context cancellation is the only exit.
func (u *Uploader) retryForever(ctx context.Context, name string, args []string) error {
	for {
		_, _, err := u.runner.Run(ctx, "", "gsutil", args...)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return zerr.Wrap(ctx.Err(), "aborted while retrying "+name)
		}
		u.logger.Warn(name + " failed, retrying: " + err.Error())

		select {
		case <-time.After(u.retryDelay):
		case <-ctx.Done():
			return zerr.Wrap(ctx.Err(), "aborted while retrying "+name)
		}
	}
}

// isBenignConflict reports whether the upload failed because the object
// already exists and the caller may not delete it, which marks a prior
// interrupted run. This matches gsutil's message text; a structured error
// code from the store API would be the sturdier check, and this function is
// the single place to swap it in.
func isBenignConflict(stderr string) bool {
	return strings.Contains(stderr, "storage.objects.delete")
}

// publicURL substitutes the configured public prefix for the destination's
// scheme and host, or returns the store path unchanged.
func publicURL(dest, prefix string) string {
	if prefix == "" {
		return dest
	}
	rest := strings.TrimPrefix(dest, "gs://")
	if i := strings.Index(rest, "/"); i >= 0 {
		return strings.TrimSuffix(prefix, "/") + rest[i:]
	}
	return strings.TrimSuffix(prefix, "/")
}
