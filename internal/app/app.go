package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/student_uploader/internal/analytics"
	"github.com/kurochkinivan/student_uploader/internal/config"
	v1 "github.com/kurochkinivan/student_uploader/internal/controller/http/v1"
	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/kurochkinivan/student_uploader/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/student_uploader/internal/ingest"
	"github.com/kurochkinivan/student_uploader/internal/pipeline"
	"github.com/kurochkinivan/student_uploader/internal/repository/postgresql"
	"github.com/kurochkinivan/student_uploader/internal/seed"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer     = 100
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// Run serves the HTTP API, and watches a directory when one is configured, until ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("upload_dir", a.cfg.App.UploadDirectory),
		slog.Int64("max_upload_size", a.cfg.App.MaxUploadSize),
		slog.Bool("reject_empty_batch", a.cfg.App.RejectEmptyBatch),
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
	)

	if err := os.MkdirAll(a.cfg.App.UploadDirectory, 0o750); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	errLog, closeErrLog, err := a.openErrorLog()
	if err != nil {
		return err
	}
	defer closeErrLog()

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	studentsRepository := postgresql.NewStudentsRepository(pool)
	uploadsRepository := postgresql.NewUploadsRepository(pool)

	interrupted, err := uploadsRepository.FailInterruptedUploads(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset interrupted uploads: %w", err)
	}
	if interrupted > 0 {
		a.log.WarnContext(ctx, "marked interrupted uploads as failed", slog.Int64("count", interrupted))
	}

	ingestor := a.newIngestor(studentsRepository, uploadsRepository)

	responder := v1.NewResponder(errLog)
	server := v1.NewServer(a.cfg.HTTP, responder, v1.Handlers{
		Upload:    v1.NewUploadHandler(responder, ingestor, a.cfg.App.UploadDirectory, a.cfg.App.MaxUploadSize),
		Students:  v1.NewStudentsHandler(responder, studentsRepository),
		Analytics: v1.NewAnalyticsHandler(responder, analytics.NewService(studentsRepository)),
		Uploads:   v1.NewUploadsHandler(responder, uploadsRepository, report_generator.New()),
	})

	erg, ctx := errgroup.WithContext(ctx)

	if dir := a.cfg.App.WatchDirectory; dir != "" {
		files := make(chan string, filesBuffer)

		scanner := pipeline.NewScanner(a.log, dir, a.cfg.App.DirectoryScanInterval, files)
		worker := pipeline.NewWorker(a.log, files, ingestor, scanner)

		erg.Go(func() error {
			a.log.InfoContext(ctx, "scanner started", slog.String("watch_dir", dir))
			return scanner.Run(ctx)
		})

		erg.Go(func() error {
			a.log.InfoContext(ctx, "worker started")
			return worker.Run(ctx)
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// IngestFile ingests a local spreadsheet. The file itself is left in place.
func (a *App) IngestFile(ctx context.Context, path string) (*domain.UploadResult, error) {
	pool, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	// Ingestion removes its source, so it works on a staged copy.
	src, err := ingest.Stage(os.TempDir(), filepath.Base(path), f)
	if err != nil {
		return nil, err
	}

	ingestor := a.newIngestor(
		postgresql.NewStudentsRepository(pool),
		postgresql.NewUploadsRepository(pool),
	)

	return ingestor.Ingest(ctx, src)
}

// Seed replaces all stored students with count random ones.
func (a *App) Seed(ctx context.Context, count int) error {
	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		a.log,
		postgresql.NewStudentsRepository(pool),
		postgresql.NewTxManager(pool),
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	)

	return seeder.Seed(ctx, count)
}

func (a *App) Migrate(direction postgresql.MigrationDirection) error {
	a.log.Info("applying migrations",
		slog.String("direction", string(direction)),
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	return postgresql.Migrate(a.log, a.cfg.PostgreSQL, direction)
}

func (a *App) newIngestor(
	studentsRepository *postgresql.StudentsRepository,
	uploadsRepository *postgresql.UploadsRepository,
) *ingest.Ingestor {
	return ingest.NewIngestor(a.log, studentsRepository, uploadsRepository, ingest.Options{
		SampleSize:       a.cfg.App.SampleSize,
		RejectEmptyBatch: a.cfg.App.RejectEmptyBatch,
	})
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return pool, nil
}

// openErrorLog returns the logger for failed requests. Without an error log
// file it is the app logger and closing is a no-op.
func (a *App) openErrorLog() (*slog.Logger, func(), error) {
	path := a.cfg.Log.ErrorLogFile
	if path == "" {
		return a.log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open error log: %w", err)
	}

	closeFn := func() {
		if err := f.Close(); err != nil {
			a.log.Error("failed to close error log", slog.String("err", err.Error()))
		}
	}

	return slog.New(slog.NewJSONHandler(f, nil)), closeFn, nil
}
