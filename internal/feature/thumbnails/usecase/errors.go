package usecase

import "errors"

// Job failure taxonomy. Every failure is terminal: the job is logged,
// acknowledged and never retried automatically, because none of these
// conditions resolve themselves on a replay of the same job.
var (
	// ErrMissingFileID is returned for a job without a fileId.
	ErrMissingFileID = errors.New("missing fileId")

	// ErrMissingUserID is returned for a job without a userId.
	ErrMissingUserID = errors.New("missing userId")

	// ErrFileNotFound is returned when no file matches (fileId, userId).
	// The file may have been deleted since the job was enqueued.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotAnImage is returned when the file exists but is not an image.
	ErrNotAnImage = errors.New("file is not an image")

	// ErrContentMissing is returned when the original bytes are absent from disk.
	ErrContentMissing = errors.New("original content missing from storage")

	// ErrRenderFailed is returned when any single rendition fails to generate
	// or persist. The remaining widths are skipped so a retry regenerates the
	// whole set.
	ErrRenderFailed = errors.New("failed to generate thumbnails")
)
