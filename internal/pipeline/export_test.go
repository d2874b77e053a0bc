package pipeline

import "context"

func (s *Scanner) ScanFiles(ctx context.Context) error {
	return s.scanFiles(ctx)
}
