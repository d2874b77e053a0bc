package ingest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultFilename   = "upload.xlsx"
	maxFilenameLength = 255
)

// Source is an uploaded spreadsheet staged for ingestion.
type Source interface {
	// Filename is the client supplied name, for display only.
	Filename() string
	Open() (io.ReadCloser, error)
	// Cleanup releases whatever backs the source.
	Cleanup() error
}

type FileSource struct {
	name string
	path string
}

func NewFileSource(name, path string) *FileSource {
	return &FileSource{
		name: SanitizeFilename(name),
		path: path,
	}
}

// Stage copies r into a new temporary file under dir.
func Stage(dir, name string, r io.Reader) (_ *FileSource, err error) {
	f, err := os.CreateTemp(dir, "upload-*.xlsx")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	return NewFileSource(name, f.Name()), nil
}

func (s *FileSource) Filename() string {
	return s.name
}

func (s *FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

func (s *FileSource) Cleanup() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// SanitizeFilename reduces an untrusted file name to a printable base name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)

	name = strings.Map(func(r rune) rune {
		if r == utf8.RuneError || unicode.IsControl(r) || strings.ContainsRune(`<>:"|?*`, r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if name == "" || name == "." || name == ".." || name == "/" {
		return defaultFilename
	}

	if utf8.RuneCountInString(name) > maxFilenameLength {
		name = string([]rune(name)[:maxFilenameLength])
	}

	return name
}
