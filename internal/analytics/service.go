package analytics

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/montanaflynn/stats"
)

const precision = 2

type MarksProvider interface {
	MarksBySubject(ctx context.Context) (map[string][]float64, error)
}

type Service struct {
	marksProvider MarksProvider
}

func NewService(marksProvider MarksProvider) *Service {
	return &Service{marksProvider: marksProvider}
}

// SubjectStats describes the marks of every subject, best average first.
func (s *Service) SubjectStats(ctx context.Context) ([]*domain.SubjectStats, error) {
	bySubject, err := s.marksProvider.MarksBySubject(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get marks: %w", err)
	}

	result := make([]*domain.SubjectStats, 0, len(bySubject))
	for subject, marks := range bySubject {
		if len(marks) == 0 {
			continue
		}

		st, err := describe(marks)
		if err != nil {
			return nil, fmt.Errorf("subject %q: %w", subject, err)
		}

		st.Subject = subject
		result = append(result, st)
	}

	slices.SortFunc(result, func(a, b *domain.SubjectStats) int {
		if c := cmp.Compare(b.AvgMarks, a.AvgMarks); c != 0 {
			return c
		}
		return cmp.Compare(a.Subject, b.Subject)
	})

	return result, nil
}

func describe(marks stats.Float64Data) (*domain.SubjectStats, error) {
	mean, err := marks.Mean()
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}

	median, err := marks.Median()
	if err != nil {
		return nil, fmt.Errorf("failed to compute median: %w", err)
	}

	stdDev, err := marks.StandardDeviation()
	if err != nil {
		return nil, fmt.Errorf("failed to compute standard deviation: %w", err)
	}

	lowest, err := marks.Min()
	if err != nil {
		return nil, fmt.Errorf("failed to compute min: %w", err)
	}

	highest, err := marks.Max()
	if err != nil {
		return nil, fmt.Errorf("failed to compute max: %w", err)
	}

	return &domain.SubjectStats{
		Count:    marks.Len(),
		AvgMarks: round(mean),
		Median:   round(median),
		StdDev:   round(stdDev),
		Min:      lowest,
		Max:      highest,
	}, nil
}

func round(v float64) float64 {
	rounded, err := stats.Round(v, precision)
	if err != nil {
		return v
	}
	return rounded
}
