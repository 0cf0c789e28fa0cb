package usecase

import (
	"context"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/domain/entity"
)

// FileRepository abstracts the persistence layer for file documents.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FileRepository interface {
	// Insert persists a new file document and fills in the generated ID.
	Insert(ctx context.Context, file *entity.File) error

	// FindByID retrieves a file by ID regardless of owner.
	// Returns ErrFileNotFound if no such file exists.
	FindByID(ctx context.Context, id string) (*entity.File, error)

	// FindByIDAndUser retrieves a file scoped to its owner.
	// Returns ErrFileNotFound when the file does not exist or belongs to
	// someone else.
	FindByIDAndUser(ctx context.Context, id, userID string) (*entity.File, error)

	// ListByUser returns one page of a user's files, optionally filtered by
	// parent folder. parentID may be empty for "any parent".
	ListByUser(ctx context.Context, userID, parentID string, page int64) ([]*entity.File, error)

	// SetPublic updates the visibility flag of an owner's file and returns
	// the updated document. Returns ErrFileNotFound for non-owners.
	SetPublic(ctx context.Context, id, userID string, public bool) (*entity.File, error)

	// Count returns the total number of file documents.
	Count(ctx context.Context) (int64, error)
}

// BlobStore abstracts local-disk persistence of file content.
type BlobStore interface {
	// Save writes content under a fresh name and returns its path.
	Save(data []byte) (string, error)

	// Read returns the content stored at path.
	Read(path string) ([]byte, error)

	// Exists reports whether content exists at path.
	Exists(path string) bool
}

// ThumbnailProducer enqueues background thumbnail jobs for uploaded images.
type ThumbnailProducer interface {
	Enqueue(ctx context.Context, userID, fileID string) error
}
