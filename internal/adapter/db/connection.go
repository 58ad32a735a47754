package db

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"studyplanner/internal/config"
)

const defaultParams = "parseTime=true&multiStatements=true"

// ConnectDB opens the MySQL pool. Timestamps are always scanned as time.Time in UTC.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := BuildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql %s:%s: %w", conf.DbHost, conf.DbPort, err)
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
		db.SetMaxIdleConns(conf.DbMaxOpenConns)
	}
	if conf.DbConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	return db, nil
}

func BuildDSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}

	raw := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	parsed, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	parsed.ParseTime = true
	parsed.Loc = time.UTC

	return parsed.FormatDSN(), nil
}
