package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"frizo/offering_engine/internal/common"
)

type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// DriverName database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	return d.String()
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS investment_submissions (
	id                    TEXT PRIMARY KEY,
	first_name            TEXT NOT NULL,
	last_name             TEXT NOT NULL,
	email                 TEXT NOT NULL,
	phone                 TEXT NOT NULL,
	is_accredited         INTEGER NOT NULL,
	consent_given         INTEGER NOT NULL,
	investment_amount     TEXT NOT NULL,
	investor_type         TEXT NOT NULL,
	investor_information  TEXT NOT NULL,
	share_price           TEXT NOT NULL,
	base_shares           INTEGER NOT NULL,
	bonus_shares          INTEGER NOT NULL,
	total_shares          INTEGER NOT NULL,
	effective_share_price TEXT NOT NULL,
	bonus_percentage      INTEGER NOT NULL,
	tier_label            TEXT NOT NULL,
	submitted_at          DATETIME NOT NULL
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS investment_submissions (
	id                    TEXT PRIMARY KEY,
	first_name            TEXT NOT NULL,
	last_name             TEXT NOT NULL,
	email                 TEXT NOT NULL,
	phone                 TEXT NOT NULL,
	is_accredited         BOOLEAN NOT NULL,
	consent_given         BOOLEAN NOT NULL,
	investment_amount     NUMERIC NOT NULL,
	investor_type         TEXT NOT NULL,
	investor_information  JSONB NOT NULL,
	share_price           NUMERIC(10, 4) NOT NULL,
	base_shares           BIGINT NOT NULL,
	bonus_shares          BIGINT NOT NULL,
	total_shares          BIGINT NOT NULL,
	effective_share_price NUMERIC(10, 4) NOT NULL,
	bonus_percentage      INTEGER NOT NULL,
	tier_label            TEXT NOT NULL,
	submitted_at          TIMESTAMPTZ NOT NULL
)`

func (d Dialect) schema() string {
	if d == Postgres {
		return postgresSchema
	}
	return sqliteSchema
}

// rebind rewrites '?' placeholders into '$n' for postgres.
func (d Dialect) rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const submissionColumns = `id, first_name, last_name, email, phone, is_accredited, consent_given,
	investment_amount, investor_type, investor_information, share_price,
	base_shares, bonus_shares, total_shares, effective_share_price, bonus_percentage,
	tier_label, submitted_at`

const (
	insertSubmissionSQL = `INSERT INTO investment_submissions (` + submissionColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectSubmissionSQL = `SELECT ` + submissionColumns + ` FROM investment_submissions WHERE id = ?`
	listSubmissionsSQL  = `SELECT ` + submissionColumns + ` FROM investment_submissions ORDER BY submitted_at, id`
)

// SQLStore database/sql backed store shared by the sqlite and postgres dialects.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an open handle. Call Migrate before first use.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) Dialect() Dialect { return s.dialect }

func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.schema()); err != nil {
		return fmt.Errorf("migrate %s: %w", s.dialect, err)
	}
	return nil
}

func (s *SQLStore) Create(ctx context.Context, sub *Submission) error {
	info, err := json.Marshal(sub.InvestorInformation)
	if err != nil {
		return fmt.Errorf("encode investor information: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.dialect.rebind(insertSubmissionSQL),
		sub.ID, sub.FirstName, sub.LastName, sub.Email, sub.Phone,
		sub.IsAccredited, sub.ConsentGiven,
		sub.InvestmentAmount, sub.InvestorType.String(), string(info), sub.SharePrice,
		sub.BaseShares, sub.BonusShares, sub.TotalShares, sub.EffectiveSharePrice, sub.BonusPercentage,
		sub.TierLabel, sub.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission %s: %w", sub.ID, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx, s.dialect.rebind(selectSubmissionSQL), id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	return sub, nil
}

func (s *SQLStore) List(ctx context.Context) ([]*Submission, error) {
	rows, err := s.db.QueryContext(ctx, listSubmissionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	out := make([]*Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("list submissions: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*Submission, error) {
	var (
		sub          Submission
		investorType string
		info         []byte
	)
	err := row.Scan(
		&sub.ID, &sub.FirstName, &sub.LastName, &sub.Email, &sub.Phone,
		&sub.IsAccredited, &sub.ConsentGiven,
		&sub.InvestmentAmount, &investorType, &info, &sub.SharePrice,
		&sub.BaseShares, &sub.BonusShares, &sub.TotalShares, &sub.EffectiveSharePrice, &sub.BonusPercentage,
		&sub.TierLabel, &sub.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}

	if sub.InvestorType, err = common.ParseInvestorType(investorType); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(info, &sub.InvestorInformation); err != nil {
		return nil, fmt.Errorf("decode investor information: %w", err)
	}
	sub.SubmittedAt = sub.SubmittedAt.UTC()
	return &sub, nil
}

// Open returns the store selected by driver. dsn is ignored for the memory store.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	var dialect Dialect
	switch driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		dialect = SQLite
	case "postgres":
		dialect = Postgres
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == SQLite {
		// a single connection keeps ":memory:" databases alive and serializes writers
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	store := NewSQLStore(db, dialect)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
