package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	Log
}

type App struct {
	UploadDirectory       string
	MaxUploadSize         int64
	SampleSize            int
	RejectEmptyBatch      bool
	WatchDirectory        string
	DirectoryScanInterval time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Log struct {
	Level        string
	ErrorLogFile string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			UploadDirectory:       cmd.String("upload-dir"),
			MaxUploadSize:         int64(cmd.Int("max-upload-size")),
			SampleSize:            cmd.Int("sample-size"),
			RejectEmptyBatch:      cmd.Bool("reject-empty-batch"),
			WatchDirectory:        cmd.String("watch-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Log: Log{
			Level:        cmd.String("log-level"),
			ErrorLogFile: cmd.String("error-log"),
		},
	}
}
