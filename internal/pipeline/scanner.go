package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const spreadsheetExt = ".xlsx"

// Scanner polls a directory and sends every new spreadsheet path to files.
// A file is sent once its size and modification time are unchanged between two
// scans, and not again while it stays in the directory unless released.
type Scanner struct {
	log          *slog.Logger
	watchDir     string
	scanInterval time.Duration
	files        chan<- string
	seen         map[string]fileState

	mu     sync.Mutex
	queued map[string]struct{}
}

type fileState struct {
	size    int64
	modTime time.Time
}

func (f fileState) equal(other fileState) bool {
	return f.size == other.size && f.modTime.Equal(other.modTime)
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	files chan<- string,
) *Scanner {
	return &Scanner{
		log:          log,
		watchDir:     watchDir,
		scanInterval: scanInterval,
		files:        files,
		seen:         make(map[string]fileState),
		queued:       make(map[string]struct{}),
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	present := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if !isSpreadsheet(entry) {
			continue
		}

		name := entry.Name()
		present[name] = struct{}{}

		if s.isQueued(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		state := fileState{size: info.Size(), modTime: info.ModTime()}
		if prev, ok := s.seen[name]; !ok || !prev.equal(state) {
			// Still being written, or seen for the first time.
			s.seen[name] = state
			continue
		}
		delete(s.seen, name)

		s.setQueued(name, true)

		select {
		case s.files <- filepath.Join(s.watchDir, name):
			s.log.DebugContext(ctx, "queued file", slog.String("filename", name))
		case <-ctx.Done():
			s.setQueued(name, false)
			return ctx.Err()
		}
	}

	// Files that left the directory may be dropped in again later.
	for name := range s.seen {
		if _, ok := present[name]; !ok {
			delete(s.seen, name)
		}
	}

	s.mu.Lock()
	for name := range s.queued {
		if _, ok := present[name]; !ok {
			delete(s.queued, name)
		}
	}
	s.mu.Unlock()

	return nil
}

// Release lets a queued file be sent again on a later scan.
func (s *Scanner) Release(path string) {
	s.setQueued(filepath.Base(path), false)
}

func (s *Scanner) isQueued(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.queued[name]
	return ok
}

func (s *Scanner) setQueued(name string, queued bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if queued {
		s.queued[name] = struct{}{}
	} else {
		delete(s.queued, name)
	}
}

func isSpreadsheet(entry os.DirEntry) bool {
	if !entry.Type().IsRegular() {
		return false
	}

	name := entry.Name()

	// Office lock files look like "~$book.xlsx".
	if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
		return false
	}

	return strings.EqualFold(filepath.Ext(name), spreadsheetExt)
}
