// Package entity defines the domain entities for the files feature.
package entity

import (
	"fmt"
	"path/filepath"
	"time"
)

// File type values. Anything else is rejected at upload.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParentID marks a file stored at the top level (no parent folder).
const RootParentID = "0"

// ThumbnailWidths are the rendition widths generated for every image,
// in generation order.
var ThumbnailWidths = []int{500, 250, 100}

// File represents a stored file or folder owned by a user.
type File struct {
	// ID is the unique identifier (document store object id, hex).
	ID string

	// UserID is the owner's user ID.
	UserID string

	// Name is the user-supplied file name, used for MIME detection.
	Name string

	// Type is one of folder, file or image.
	Type string

	// IsPublic controls whether non-owners may read the content.
	IsPublic bool

	// ParentID is the containing folder's ID, or RootParentID.
	ParentID string

	// LocalPath is the absolute on-disk location of the content.
	// Empty for folders, which have no retrievable content.
	LocalPath string

	// CreatedAt is the timestamp when the file was uploaded.
	CreatedAt time.Time
}

// ThumbnailDir returns the directory holding this file's renditions:
// a "thumbnails" subdirectory beside the original.
func (f *File) ThumbnailDir() string {
	return filepath.Join(filepath.Dir(f.LocalPath), "thumbnails")
}

// ThumbnailPath returns the on-disk path of the rendition for a width.
// The name is the original blob name suffixed with the width, keeping the
// extension of the user-supplied file name.
func (f *File) ThumbnailPath(width int) string {
	name := fmt.Sprintf("%s_%d%s", filepath.Base(f.LocalPath), width, filepath.Ext(f.Name))
	return filepath.Join(f.ThumbnailDir(), name)
}
