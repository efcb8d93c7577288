package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepository handles activity-log database operations. The
// advisor works without it; when no database is configured the service
// simply skips logging.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogAnalysis logs one image-analysis request and its outcome
func (r *PostgresRepository) LogAnalysis(ctx context.Context, analysisID, predictedClass string, confidence float64, category string, disposalSteps []string, responseTimeMs int) error {
	query := `
		INSERT INTO analysis_logs (analysis_id, predicted_class, confidence, category, disposal_steps, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, analysisID, predictedClass, confidence, category, pq.Array(disposalSteps), responseTimeMs)
	if err != nil {
		return fmt.Errorf("failed to log analysis: %w", err)
	}
	return nil
}

// LogChat logs one chat turn with the matched intent
func (r *PostgresRepository) LogChat(ctx context.Context, message, intent, lastClass string, responseTimeMs int) error {
	query := `
		INSERT INTO chat_logs (message, matched_intent, last_class, response_time_ms)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, message, intent, lastClass, responseTimeMs)
	if err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

// LogFeedback records user feedback against a previous analysis
func (r *PostgresRepository) LogFeedback(ctx context.Context, analysisID, action, comment string) error {
	query := `
		UPDATE analysis_logs
		SET feedback_action = $2, feedback_comment = $3
		WHERE analysis_id = $1
	`
	_, err := r.db.ExecContext(ctx, query, analysisID, action, comment)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
