// Package photo stores observation photographs on local disk and hands out
// opaque references. The core only ever carries the reference; nothing in
// the record store depends on the bytes behind it.
package photo

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/knagasaki/spectra/internal/errors"
)

// allowedExtensions mirrors the upload types the survey accepts in the field.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Dir is a photo store rooted at a single directory.
type Dir struct {
	root string
}

// OpenDir creates (if needed) and opens the photo directory.
func OpenDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("create photo directory: %w", err))
	}
	return &Dir{root: root}, nil
}

// Store writes photo bytes and returns the opaque reference for the record.
// The reference is a ULID plus the original extension.
func (d *Dir) Store(data []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if !allowedExtensions[ext] {
		return "", errors.NewInvalidRequest(fmt.Sprintf("photo extension %q not allowed (png, jpg, jpeg)", ext))
	}
	if len(data) == 0 {
		return "", errors.NewInvalidRequest("photo data is empty")
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	ref := id.String() + ext

	if err := os.WriteFile(filepath.Join(d.root, ref), data, 0600); err != nil {
		return "", errors.NewInternal(fmt.Errorf("write photo: %w", err))
	}
	return ref, nil
}

// Fetch returns the bytes behind a reference.
func (d *Dir) Fetch(ref string) ([]byte, error) {
	if err := ValidateRef(ref); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(d.root, ref))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(ref)
		}
		return nil, errors.NewInternal(err)
	}
	return data, nil
}

// ValidateRef rejects references that could escape the photo directory or
// name something other than an image. References are a single file name
// directly in the store, never a path.
func ValidateRef(ref string) error {
	if ref == "" {
		return errors.NewInvalidRequest("photo reference is required")
	}
	if strings.ContainsAny(ref, `/\`) || strings.Contains(ref, "..") {
		return errors.NewInvalidRequest("photo reference must not contain path separators or traversal")
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(ref))] {
		return errors.NewInvalidRequest("photo reference must end in .png, .jpg, or .jpeg")
	}
	return nil
}
