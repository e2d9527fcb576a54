package config

import (
	"flag"
	"fmt"
	"os"
)

// parseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-driver database driver: sqlite3, pgx or mysql
//	-d database DSN
//	-hash-cost bcrypt cost for new passwords
//	-search-min minimal search text length
//	-log-file log file path
//	-log-level log level (trace, debug, info, warn, error)
//	-c/-config json file path with configs
//	-env-file .env file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var driver string
	var databaseDSN string
	var hashCost int
	var searchMinLength int
	var logFile string
	var logLevel string
	var jsonConfigPath string
	var dotEnvPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.StringVar(&driver, "driver", "", "Database driver: sqlite3, pgx or mysql")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost for new passwords")
	fs.IntVar(&searchMinLength, "search-min", 0, "Minimal search text length")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashCost: hashCost,
			SearchMinLength:  searchMinLength,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Logger: Logger{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "stock-keeper"
}
