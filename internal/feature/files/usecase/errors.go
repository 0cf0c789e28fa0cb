package usecase

import "errors"

var (
	// ErrFileNotFound is returned when a file does not exist or the requester
	// is not allowed to know it exists. Both cases are deliberately the same
	// error so access denial never confirms a file's existence.
	ErrFileNotFound = errors.New("file not found")

	// ErrFolderHasNoContent is returned when content is requested for a folder.
	ErrFolderHasNoContent = errors.New("a folder doesn't have content")

	// ErrContentMissing is returned when the file document exists but the
	// backing bytes are absent from disk.
	ErrContentMissing = errors.New("file content missing from storage")

	// ErrMissingName is returned when an upload has no name.
	ErrMissingName = errors.New("missing name")

	// ErrMissingType is returned when an upload has no type or an unknown one.
	ErrMissingType = errors.New("missing type")

	// ErrMissingData is returned when a non-folder upload has no data.
	ErrMissingData = errors.New("missing data")

	// ErrInvalidData is returned when the upload data is not valid base64.
	ErrInvalidData = errors.New("invalid data")

	// ErrParentNotFound is returned when the given parent does not exist.
	ErrParentNotFound = errors.New("parent not found")

	// ErrParentNotFolder is returned when the given parent is not a folder.
	ErrParentNotFolder = errors.New("parent is not a folder")

	// ErrUnknownMime is returned when no MIME type matches the file name.
	ErrUnknownMime = errors.New("unable to determine mime type")
)
