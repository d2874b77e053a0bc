package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const DefaultCount = 10_000

var (
	subjects = []string{"Maths", "Science", "English", "History", "Geography"}
	names    = []string{"Ravi", "Priya", "Ananya", "Karan", "Manoj", "Divya"}
)

type StudentsStore interface {
	DeleteAllStudents(ctx context.Context) error
	SaveStudents(ctx context.Context, students []*domain.Student) ([]*domain.Student, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Seeder struct {
	log        *slog.Logger
	store      StudentsStore
	transactor Transactor
	rnd        *rand.Rand
}

func NewSeeder(log *slog.Logger, store StudentsStore, transactor Transactor, rnd *rand.Rand) *Seeder {
	return &Seeder{
		log:        log,
		store:      store,
		transactor: transactor,
		rnd:        rnd,
	}
}

// Seed replaces every stored student with count generated ones.
func (s *Seeder) Seed(ctx context.Context, count int) error {
	students := Generate(s.rnd, count)

	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.DeleteAllStudents(ctx); err != nil {
			return fmt.Errorf("failed to delete students: %w", err)
		}

		rejected, err := s.store.SaveStudents(ctx, students)
		if err != nil {
			return fmt.Errorf("failed to save students: %w", err)
		}

		if len(rejected) > 0 {
			return fmt.Errorf("store rejected %d generated students", len(rejected))
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "students seeded", slog.Int("count", len(students)))

	return nil
}

// Generate returns count students with rolls R00001, R00002, ... and integer marks in [0,100].
func Generate(rnd *rand.Rand, count int) []*domain.Student {
	students := make([]*domain.Student, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		students = append(students, &domain.Student{
			Name:    names[rnd.IntN(len(names))],
			Roll:    fmt.Sprintf("R%05d", i),
			Subject: subjects[rnd.IntN(len(subjects))],
			Marks:   float64(rnd.IntN(101)),
			Row:     i,
		})
	}

	return students
}
