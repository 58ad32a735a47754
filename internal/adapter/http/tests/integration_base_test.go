//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "studyplanner/internal/adapter/db"
	"studyplanner/internal/config"
)

var schemaFiles = []string{
	"db/migrations/20260301090000_create_profiles_table.up.sql",
	"db/migrations/20260301090100_create_test_periods_table.up.sql",
	"db/migrations/20260301090200_create_tasks_table.up.sql",
	"db/seed.sql",
}

// IntegrationSuiteBase owns a throwaway <database>_test schema, rebuilt from the
// migrations and seed before each test.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB *sqlx.DB
	DB      *sqlx.DB
	cfg     *config.Config
}

func (s *IntegrationSuiteBase) SetupSuite() {
	s.cfg = &config.Config{
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbName:     envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "studyplanner")+"_test"),
		DbParams:   envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
	}

	admin := *s.cfg
	admin.DbName = ""
	adminDB, err := dbadapter.ConnectDB(&admin)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.cfg.DbName))
	s.Require().NoError(err)

	s.DB, err = dbadapter.ConnectDB(s.cfg)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB == nil {
		return
	}
	if strings.HasSuffix(s.cfg.DbName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.cfg.DbName))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.adminDB.Close())
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	resetSchema(s.T(), s.DB)
}

func resetSchema(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`
DROP TABLE IF EXISTS tasks;
DROP TABLE IF EXISTS test_periods;
DROP TABLE IF EXISTS profiles;
`)
	require.NoError(t, err)

	root := projectRoot(t)
	for _, file := range schemaFiles {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(file)))
		require.NoError(t, err)
		_, err = db.Exec(string(content))
		require.NoError(t, err, file)
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
