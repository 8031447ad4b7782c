// Package pg wires PostgreSQL through github.com/jackc/pgx/v5.
//
// Connect opens a pgxpool.Pool with linear backoff between attempts and
// verifies it with a ping. Migrate applies goose SQL migrations from an
// fs.FS (usually an embedded directory) through the database/sql bridge in
// pgx/v5/stdlib. Healthcheck adapts the pool to the readiness probe.
//
// IsNotFoundError and IsDuplicateKeyError classify driver errors so storage
// code can translate them into domain errors.
package pg
