package filestorage

import (
	"errors"
	"mime/multipart"
)

// ErrInvalidFilename is returned for names that do not reduce to a plain file name
var ErrInvalidFilename = errors.New("invalid file name")

// FileStorage defines the interface for certificate storage operations
type FileStorage interface {
	// SaveFile stores the upload under its original base filename and returns that name.
	// An existing file with the same name is overwritten.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file; a missing file is not an error
	DeleteFile(name string) error

	// Exists reports whether a file is stored under the base of name
	Exists(name string) bool

	// GetFullPath returns the filesystem path of a stored file, or "" for an invalid name
	GetFullPath(name string) string
}
