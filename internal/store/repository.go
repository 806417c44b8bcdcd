// Package store persists pipeline results to PostgreSQL. Opt-in: the file
// pipeline never requires a database.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/sentiq/internal/contracts"
)

// Repository persists daily sentiment and correlation reports
// ⭐ SSOT: 결과 영속화는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a result repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the result tables if they do not exist.
// The tool is standalone, so it owns its own two tables instead of relying
// on an external migration step.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS daily_sentiment (
			ticker       TEXT        NOT NULL,
			trading_date DATE        NOT NULL,
			mean_score   DOUBLE PRECISION NOT NULL,
			news_count   INTEGER     NOT NULL,
			PRIMARY KEY (ticker, trading_date)
		)`,
		`CREATE TABLE IF NOT EXISTS correlation_reports (
			id          BIGSERIAL PRIMARY KEY,
			ticker      TEXT      NOT NULL,
			pearson     DOUBLE PRECISION NOT NULL,
			days_joined INTEGER   NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range ddl {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SaveDailySentiment upserts the aggregated daily series
func (r *Repository) SaveDailySentiment(ctx context.Context, daily []contracts.DailySentiment) error {
	if len(daily) == 0 {
		return nil
	}

	query := `
		INSERT INTO daily_sentiment (ticker, trading_date, mean_score, news_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ticker, trading_date) DO UPDATE SET
			mean_score = EXCLUDED.mean_score,
			news_count = EXCLUDED.news_count
	`

	for _, d := range daily {
		if _, err := r.pool.Exec(ctx, query, d.Ticker, d.TradingDate, d.MeanScore, d.NewsCount); err != nil {
			return fmt.Errorf("save daily sentiment %s %s: %w", d.Ticker, d.TradingDate.Format("2006-01-02"), err)
		}
	}
	return nil
}

// SaveReport inserts one correlation report
func (r *Repository) SaveReport(ctx context.Context, report *contracts.CorrelationReport) error {
	query := `
		INSERT INTO correlation_reports (ticker, pearson, days_joined, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, report.Ticker, report.Pearson, report.DaysJoined, report.CreatedAt)
	if err != nil {
		return fmt.Errorf("save correlation report for %s: %w", report.Ticker, err)
	}
	return nil
}

// RecentReports retrieves the latest reports for a ticker, newest first
func (r *Repository) RecentReports(ctx context.Context, ticker string, limit int) ([]contracts.CorrelationReport, error) {
	query := `
		SELECT ticker, pearson, days_joined, created_at
		FROM correlation_reports
		WHERE ticker = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("query correlation reports: %w", err)
	}
	defer rows.Close()

	var reports []contracts.CorrelationReport
	for rows.Next() {
		var rep contracts.CorrelationReport
		if err := rows.Scan(&rep.Ticker, &rep.Pearson, &rep.DaysJoined, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan correlation report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
