package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/siherrmann/annotator/helper"
	"github.com/siherrmann/annotator/model"
	"github.com/siherrmann/annotator/sql"
)

// SessionsDBHandlerFunctions defines the interface for session archive
// database operations. The archive is insert-only: snapshots are immutable
// and rows are never updated or deleted.
type SessionsDBHandlerFunctions interface {
	InsertSession(snapshot *model.Snapshot, embedding []float32) (*model.Snapshot, error)
	SelectSession(rid uuid.UUID) (*model.Snapshot, error)
	SelectSessions(limit int) ([]*model.Snapshot, error)
	SelectSessionsBySimilarity(embedding []float32, topK int) ([]*SimilarSession, error)
	CountSessions() (int64, error)
}

// SimilarSession is an archived snapshot with its cosine similarity to a query
type SimilarSession struct {
	Snapshot   *model.Snapshot `json:"snapshot"`
	Similarity float64         `json:"similarity"`
}

// SessionsDBHandler handles session-archive database operations
type SessionsDBHandler struct {
	db *helper.Database
}

// NewSessionsDBHandler creates a new sessions database handler.
// It loads the session-related SQL functions and creates the table.
// If force is true, it will reload the SQL functions even if they already exist.
func NewSessionsDBHandler(db *helper.Database, force bool) (*SessionsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	sessionsDbHandler := &SessionsDBHandler{
		db: db,
	}

	err := sql.LoadSessionsSql(sessionsDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load sessions sql", err)
	}

	err = sessionsDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized SessionsDBHandler")

	return sessionsDbHandler, nil
}

// CreateTable creates the 'sessions' table in the database.
// If the table already exists, it does not create it again.
// It also creates all necessary indexes.
func (h *SessionsDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_sessions();`)
	if err != nil {
		log.Panicf("error initializing sessions table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table sessions")

	return nil
}

// InsertSession archives a snapshot and returns the archived row as a new
// snapshot carrying the database id and insertion time. The given snapshot
// is read only, never written: recorded snapshots are immutable and the
// database-generated fields must not leak back into them.
// The embedding is optional; without it the row is excluded from similarity
// search but still listed.
func (h *SessionsDBHandler) InsertSession(snapshot *model.Snapshot, embedding []float32) (*model.Snapshot, error) {
	var embeddingValue interface{}
	if embedding != nil {
		embeddingValue = pgvector.NewVector(embedding)
	}

	row := h.db.Instance.QueryRow(
		`SELECT id, rid, source_text, entities, labels, model_id, created_at FROM insert_session($1, $2, $3, $4, $5, $6)`,
		snapshot.RID,
		snapshot.SourceText,
		snapshot.Entities,
		snapshot.Labels,
		snapshot.ModelID,
		embeddingValue,
	)

	archived := &model.Snapshot{}
	err := row.Scan(
		&archived.ID,
		&archived.RID,
		&archived.SourceText,
		&archived.Entities,
		&archived.Labels,
		&archived.ModelID,
		&archived.CreatedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return archived, nil
}

// SelectSession retrieves an archived snapshot by its rid
func (h *SessionsDBHandler) SelectSession(rid uuid.UUID) (*model.Snapshot, error) {
	snapshot := &model.Snapshot{}
	row := h.db.Instance.QueryRow(
		`SELECT id, rid, source_text, entities, labels, model_id, created_at FROM select_session($1)`,
		rid,
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.RID,
		&snapshot.SourceText,
		&snapshot.Entities,
		&snapshot.Labels,
		&snapshot.ModelID,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return snapshot, nil
}

// SelectSessions retrieves archived snapshots newest first
func (h *SessionsDBHandler) SelectSessions(limit int) ([]*model.Snapshot, error) {
	rows, err := h.db.Instance.Query(
		`SELECT id, rid, source_text, entities, labels, model_id, created_at FROM select_sessions($1)`,
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var snapshots []*model.Snapshot
	for rows.Next() {
		snapshot := &model.Snapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.RID,
			&snapshot.SourceText,
			&snapshot.Entities,
			&snapshot.Labels,
			&snapshot.ModelID,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		snapshots = append(snapshots, snapshot)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return snapshots, nil
}

// SelectSessionsBySimilarity retrieves the archived snapshots whose source
// text embedding is most similar to the given query embedding
func (h *SessionsDBHandler) SelectSessionsBySimilarity(embedding []float32, topK int) ([]*SimilarSession, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_sessions_by_similarity($1, $2)`,
		pgvector.NewVector(embedding),
		topK,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var sessions []*SimilarSession
	for rows.Next() {
		similar := &SimilarSession{Snapshot: &model.Snapshot{}}
		err := rows.Scan(
			&similar.Snapshot.ID,
			&similar.Snapshot.RID,
			&similar.Snapshot.SourceText,
			&similar.Snapshot.Entities,
			&similar.Snapshot.Labels,
			&similar.Snapshot.ModelID,
			&similar.Snapshot.CreatedAt,
			&similar.Similarity,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		sessions = append(sessions, similar)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return sessions, nil
}

// CountSessions returns the number of archived snapshots
func (h *SessionsDBHandler) CountSessions() (int64, error) {
	var count int64
	err := h.db.Instance.QueryRow(`SELECT count_sessions()`).Scan(&count)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return count, nil
}
