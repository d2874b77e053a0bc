package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/student_uploader/internal/app"
	"github.com/kurochkinivan/student_uploader/internal/config"
	"github.com/kurochkinivan/student_uploader/internal/repository/postgresql"
	"github.com/kurochkinivan/student_uploader/internal/seed"
	"github.com/kurochkinivan/student_uploader/internal/summary"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd(log *slog.Logger, level *slog.LevelVar) *cli.Command {
	var configFile string

	return &cli.Command{
		Name:    "student_uploader",
		Usage:   "Student records spreadsheet uploader",
		Version: version,
		Flags:   flags(&configFile),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
				return ctx, fmt.Errorf("invalid log level: %w", err)
			}

			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.New(log, config.Load(cmd)).Run(ctx)
		},
		Commands: []*cli.Command{
			{
				Name:      "migrate",
				Usage:     "Apply or roll back database migrations",
				ArgsUsage: "up|down",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					direction, err := postgresql.ParseMigrationDirection(cmd.Args().First())
					if err != nil {
						return err
					}

					return app.New(log, config.Load(cmd)).Migrate(direction)
				},
			},
			{
				Name:  "seed",
				Usage: "Replace all students with randomly generated ones",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Usage: "Set number of students to generate",
						Value: seed.DefaultCount,
						Validator: func(count int) error {
							if count <= 0 {
								return fmt.Errorf("count must be positive, got %d", count)
							}
							return nil
						},
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return app.New(log, config.Load(cmd)).Seed(ctx, cmd.Int("count"))
				},
			},
			{
				Name:      "ingest",
				Usage:     "Ingest a local spreadsheet and print its summary",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						return errors.New("FILE is required")
					}

					result, err := app.New(log, config.Load(cmd)).IngestFile(ctx, path)
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(cmd.Root().Writer, summary.Summarize(result))
					return err
				},
			},
		},
	}
}

func flags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Sources:     cli.EnvVars("CONFIG_FILE"),
			Destination: configFile,
		},
		&cli.StringFlag{
			Name:    "upload-dir",
			Aliases: []string{"u"},
			Usage:   "Set directory for staged uploads",
			Value:   filepath.Join(os.TempDir(), "student_uploader"),
			Sources: sources("UPLOAD_DIR", "app.upload_dir", configFile),
		},
		&cli.IntFlag{
			Name:    "max-upload-size",
			Usage:   "Set maximum upload size in bytes",
			Value:   2 << 20,
			Sources: sources("MAX_UPLOAD_SIZE", "app.max_upload_size", configFile),
		},
		&cli.IntFlag{
			Name:    "sample-size",
			Usage:   "Set number of failed rows included in a summary",
			Value:   3,
			Sources: sources("SAMPLE_SIZE", "app.sample_size", configFile),
		},
		&cli.BoolFlag{
			Name:    "reject-empty-batch",
			Usage:   "Reject uploads without a single valid row",
			Sources: sources("REJECT_EMPTY_BATCH", "app.reject_empty_batch", configFile),
		},
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for new spreadsheets",
			Sources:   sources("WATCH_DIR", "app.watch_dir", configFile),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set watch directory scan interval",
			Sources: sources("SCAN_INTERVAL", "app.scan_interval", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: sources("PG_HOST", "postgresql.host", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources("PG_PORT", "postgresql.port", configFile),
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  sources("PG_USERNAME", "postgresql.username", configFile),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  sources("PG_PASSWORD", "postgresql.password", configFile),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "student_uploader",
			Sources: sources("PG_DBNAME", "postgresql.dbname", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: sources("PG_SSLMODE", "postgresql.sslmode", configFile),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: sources("HTTP_HOST", "http.host", configFile),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: sources("HTTP_PORT", "http.port", configFile),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_IDLE_TIMEOUT", "http.idle_timeout", configFile),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: sources("HTTP_READ_TIMEOUT", "http.read_timeout", configFile),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: sources("HTTP_WRITE_TIMEOUT", "http.write_timeout", configFile),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "info",
			Sources: sources("LOG_LEVEL", "log.level", configFile),
		},
		&cli.StringFlag{
			Name:    "error-log",
			Usage:   "Append failed requests as JSON to `FILE`",
			Sources: sources("ERROR_LOG", "log.error_log", configFile),
		},
	}
}

// sources looks a flag up in the environment first, then in the config file.
func sources(env, key string, configFile *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(env),
		yaml.YAML(key, altsrc.NewStringPtrSourcer(configFile)),
	)
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
