package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"fd-calculator/domain"
	"fd-calculator/logger"
)

// createdAtLayout is fixed width so created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const createCalculationsTable = `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		subject TEXT,
		product_id INTEGER,
		principal TEXT NOT NULL,
		interest_rate TEXT NOT NULL,
		tenure_months INTEGER NOT NULL,
		interest_earned TEXT NOT NULL,
		maturity_amount TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);`

// CalculationRepositorySQLite persists history in a sqlite file. Amounts are
// stored as decimal strings so nothing is lost to floating point.
type CalculationRepositorySQLite struct {
	db *sql.DB
}

func NewCalculationRepositorySQLite(databasePath string) (*CalculationRepositorySQLite, error) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createCalculationsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create calculations table: %w", err)
	}
	logger.L.Info("Calculation history database ready", "databasePath", databasePath)
	return &CalculationRepositorySQLite{db: db}, nil
}

func (r *CalculationRepositorySQLite) Save(ctx context.Context, rec domain.CalculationRecord) error {
	var productID sql.NullInt64
	if rec.ProductID != 0 {
		productID = sql.NullInt64{Int64: rec.ProductID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calculations (id, kind, subject, product_id, principal, interest_rate,
			tenure_months, interest_earned, maturity_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.Subject, productID,
		rec.Principal.String(), rec.InterestRate.String(), rec.TenureInMonths,
		rec.InterestEarned.String(), rec.MaturityAmount.String(),
		rec.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", rec.ID, err)
	}
	return nil
}

func (r *CalculationRepositorySQLite) Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, subject, product_id, principal, interest_rate,
			tenure_months, interest_earned, maturity_amount, created_at
		FROM calculations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *CalculationRepositorySQLite) Close() error {
	return r.db.Close()
}

func scanCalculation(rows *sql.Rows) (domain.CalculationRecord, error) {
	var (
		rec                                       domain.CalculationRecord
		subject                                   sql.NullString
		productID                                 sql.NullInt64
		principal, rate, interest, maturity, when string
	)
	if err := rows.Scan(&rec.ID, &rec.Kind, &subject, &productID, &principal, &rate,
		&rec.TenureInMonths, &interest, &maturity, &when); err != nil {
		return rec, fmt.Errorf("scan calculation: %w", err)
	}
	rec.Subject = subject.String
	rec.ProductID = productID.Int64

	var err error
	if rec.Principal, err = decimal.NewFromString(principal); err != nil {
		return rec, fmt.Errorf("calculation %s principal: %w", rec.ID, err)
	}
	if rec.InterestRate, err = decimal.NewFromString(rate); err != nil {
		return rec, fmt.Errorf("calculation %s interest rate: %w", rec.ID, err)
	}
	if rec.InterestEarned, err = decimal.NewFromString(interest); err != nil {
		return rec, fmt.Errorf("calculation %s interest: %w", rec.ID, err)
	}
	if rec.MaturityAmount, err = decimal.NewFromString(maturity); err != nil {
		return rec, fmt.Errorf("calculation %s maturity: %w", rec.ID, err)
	}
	if rec.CreatedAt, err = time.Parse(createdAtLayout, when); err != nil {
		return rec, fmt.Errorf("calculation %s created_at: %w", rec.ID, err)
	}
	return rec, nil
}
