package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error parsing DSN")
		return nil, fmt.Errorf("error parsing mysql DSN: %w", err)
	}
	// goose migrations hold several statements per file
	mysqlCfg.MultiStatements = true
	mysqlCfg.ParseTime = true
	// affected rows count matched rows, so an unchanged update is not "not found"
	mysqlCfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error creating connector")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn := sql.OpenDB(connector)
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	return newDB(conn, config.DriverMySQL, log), nil
}
