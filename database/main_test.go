package database

import (
	"context"
	"log"
	"testing"

	"github.com/siherrmann/annotator/helper"
	"github.com/siherrmann/annotator/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	_ "github.com/lib/pq"
)

var dbPort string

func TestMain(m *testing.M) {
	var teardown func(ctx context.Context, opts ...testcontainers.TerminateOption) error
	var err error
	teardown, dbPort, err = helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("error starting postgres container: %v", err)
	}

	m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatalf("error tearing down postgres container: %v", err)
	}
}

func initHandler(t *testing.T) *SessionsDBHandler {
	helper.SetTestDatabaseConfigEnvs(t, dbPort)
	dbConfig, err := helper.NewDatabaseConfiguration()
	require.NoError(t, err, "failed to create database configuration")
	database := helper.NewTestDatabase(dbConfig)

	err = sql.Init(database.Instance)
	require.NoError(t, err)

	handler, err := NewSessionsDBHandler(database, true)
	require.NoError(t, err)
	require.NotNil(t, handler)

	return handler
}
