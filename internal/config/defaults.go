package config

import "golang.org/x/crypto/bcrypt"

const (
	defaultDriver          = DriverSQLite
	defaultDSN             = "stock.db"
	defaultSearchMinLength = 2
	defaultLogFile         = "stock.log"
	defaultLogLevel        = "debug"
	defaultDotEnvPath      = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: bcrypt.DefaultCost,
			SearchMinLength:  defaultSearchMinLength,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDriver,
				DSN:    defaultDSN,
			},
		},
		Logger: Logger{
			File:  defaultLogFile,
			Level: defaultLogLevel,
		},
	}
}
