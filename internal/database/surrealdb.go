package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB is the Database implementation backed by the SurrealDB driver.
// The zero connection is unusable until Connect succeeds.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB wraps the configuration; call Connect before use.
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{config: cfg}
}

// Connect dials the websocket endpoint, signs in as the configured root
// user, and selects the namespace and database.
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)
	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if _, err := db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	}); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close tears the connection down. Safe on a never-connected instance.
func (s *SurrealDB) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close(context.Background())
}

// Ping verifies the connection is alive by asking the server its version.
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query runs a statement and returns one wrapper per statement result, each
// a map carrying the driver's status and result payload. Any non-OK
// statement fails the whole call.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	wrapped := make([]interface{}, 0, len(*results))
	for _, statement := range *results {
		if statement.Status != "OK" {
			if statement.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, statement.Error.Message)
			}
			return nil, ErrQuery
		}
		wrapped = append(wrapped, map[string]interface{}{
			"status": statement.Status,
			"result": statement.Result,
		})
	}
	return wrapped, nil
}

// QueryOne runs a statement and returns the first record of the first
// statement result, or ErrNotFound when the result set is empty.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	wrapper, ok := results[0].(map[string]interface{})
	if !ok {
		return results[0], nil
	}
	if status, ok := wrapper["status"].(string); !ok || status != "OK" {
		return results[0], nil
	}

	payload := wrapper["result"]
	records, ok := payload.([]interface{})
	if !ok {
		// Scalar result (count, version, ...) passes through unwrapped.
		return payload, nil
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Execute runs a mutation, discarding results.
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// BeginTx opens a batch transaction. Statements queue in memory and run
// atomically inside BEGIN/COMMIT TRANSACTION when Commit is called.
func (s *SurrealDB) BeginTx(ctx context.Context) (Transaction, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	return &surrealTx{db: s.db, ctx: ctx}, nil
}

// surrealTx accumulates statements for a single atomic batch.
type surrealTx struct {
	db        *surrealdb.DB
	ctx       context.Context
	pending   []pendingQuery
	committed bool
}

type pendingQuery struct {
	query string
	vars  map[string]interface{}
}

func (t *surrealTx) enqueue(query string, vars map[string]interface{}) {
	t.pending = append(t.pending, pendingQuery{query: query, vars: vars})
}

// Queued statements produce no results until Commit.
func (t *surrealTx) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	t.enqueue(query, vars)
	return nil, nil
}

func (t *surrealTx) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	t.enqueue(query, vars)
	return nil, nil
}

func (t *surrealTx) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	t.enqueue(query, vars)
	return nil
}

// Commit wraps the queued statements in a transaction block and runs them in
// one round trip. Variables are merged across statements, so names must not
// collide with different values.
func (t *surrealTx) Commit() error {
	if t.committed {
		return nil
	}

	var batch strings.Builder
	batch.WriteString("BEGIN TRANSACTION;\n")
	merged := make(map[string]interface{})
	for _, q := range t.pending {
		batch.WriteString(q.query)
		batch.WriteString(";\n")
		for name, value := range q.vars {
			merged[name] = value
		}
	}
	batch.WriteString("COMMIT TRANSACTION;")

	if _, err := surrealdb.Query[interface{}](t.ctx, t.db, batch.String(), merged); err != nil {
		return fmt.Errorf("%w: commit failed: %v", ErrQuery, err)
	}

	t.committed = true
	return nil
}

// Rollback discards the queued statements; nothing has reached the server.
func (t *surrealTx) Rollback() error {
	t.pending = nil
	return nil
}
