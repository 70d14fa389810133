package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

type Config struct {
	App
	Generation
	Converter
	Storage
	PostgreSQL
	SQLite
	HTTP
}

type App struct {
	JobRetention time.Duration
}

type Generation struct {
	OutputDirectory  string
	ScratchDirectory string
	TemplatesCatalog string
	Columns          Columns
}

type Columns struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Template       string
	Recipient      string
	PDFPassword    string
	Reason         string
}

type Converter struct {
	Command     string
	Args        []string
	GracePeriod time.Duration
}

type Storage struct {
	Driver string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type SQLite struct {
	Path string
}

type HTTP struct {
	Host           string
	Port           string
	IdleTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxUploadBytes int64
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			JobRetention: cmd.Duration("job-retention"),
		},
		Generation: Generation{
			OutputDirectory:  cmd.String("output-dir"),
			ScratchDirectory: cmd.String("scratch-dir"),
			TemplatesCatalog: cmd.String("templates-catalog"),
			Columns: Columns{
				EmployeeNumber: cmd.String("column-employee-number"),
				FirstName:      cmd.String("column-first-name"),
				LastName:       cmd.String("column-last-name"),
				Template:       cmd.String("column-template"),
				Recipient:      cmd.String("column-recipient"),
				PDFPassword:    cmd.String("column-pdf-password"),
				Reason:         cmd.String("column-reason"),
			},
		},
		Converter: Converter{
			Command:     cmd.String("converter-command"),
			Args:        cmd.StringSlice("converter-args"),
			GracePeriod: cmd.Duration("converter-grace-period"),
		},
		Storage: Storage{
			Driver: cmd.String("storage-driver"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		SQLite: SQLite{
			Path: cmd.String("sqlite-path"),
		},
		HTTP: HTTP{
			Host:           cmd.String("http-host"),
			Port:           cmd.String("http-port"),
			IdleTimeout:    cmd.Duration("http-idle-timeout"),
			ReadTimeout:    cmd.Duration("http-read-timeout"),
			WriteTimeout:   cmd.Duration("http-write-timeout"),
			MaxUploadBytes: cmd.Int64("http-max-upload-bytes"),
		},
	}
}
