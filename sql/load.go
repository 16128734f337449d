package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
)

//go:embed init.sql
var initSQL string

//go:embed sessions.sql
var sessionsSQL string

// SessionsFunctions lists the SQL functions the archive relies on,
// used to verify a successful load
var SessionsFunctions = []string{
	"init_sessions",
	"insert_session",
	"select_session",
	"select_sessions",
	"select_sessions_by_similarity",
	"count_sessions",
}

// Init intializes db extensions
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	log.Println("Database extensions initialized successfully")
	return nil
}

// LoadSessionsSql loads session-related SQL functions
func LoadSessionsSql(db *sql.DB, force bool) error {
	if !force {
		exist, err := checkFunctions(db, SessionsFunctions)
		if err != nil {
			return fmt.Errorf("error checking existing sessions functions: %w", err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(sessionsSQL)
	if err != nil {
		return fmt.Errorf("error executing sessions SQL: %w", err)
	}

	exist, err := checkFunctions(db, SessionsFunctions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Println("SQL sessions functions loaded successfully")
	return nil
}

// checkFunctions verifies that all required functions exist in the database
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	var allExist bool
	for _, f := range sqlFunctions {
		err := db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);`,
			f,
		).Scan(&allExist)
		if err != nil {
			return false, fmt.Errorf("error checking existence of function %s: %w", f, err)
		}
		if !allExist {
			log.Printf("Function %s does not exist", f)
			break
		}
	}
	return allExist, nil
}
