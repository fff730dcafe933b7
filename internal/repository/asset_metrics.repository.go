package repository

import (
	"context"
	"database/sql"
	"errors"
	"findata/internal/db"
	"findata/internal/db/models/postgres/public/model"
	. "findata/internal/db/models/postgres/public/table"
	"findata/internal/domain"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// AssetMetricsRepository holds the latest snapshot per symbol. Symbol is
// unique, and Replace is atomic: readers see all of a batch or none of it.
type AssetMetricsRepository interface {
	List(ctx context.Context) ([]domain.AssetMetrics, error)
	Get(ctx context.Context, symbol string) (*domain.AssetMetrics, error)
	// Replace removes every snapshot for symbols, then writes records
	Replace(ctx context.Context, symbols []string, records []domain.AssetMetrics) error
	Close() error
}

func storeErr(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", domain.ErrStoreUnavailable, action, err)
}

type postgresAssetMetricsRepositoryHandler struct {
	Db           *sql.DB
	ReplaceMutex *sync.Mutex
}

func NewPostgresAssetMetricsRepository(ctx context.Context, dsn string) (AssetMetricsRepository, error) {
	dbConn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, storeErr("open postgres", err)
	}
	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, storeErr("ping postgres", err)
	}
	if err := db.MigratePostgres(ctx, dbConn); err != nil {
		dbConn.Close()
		return nil, storeErr("migrate postgres", err)
	}

	return postgresAssetMetricsRepositoryHandler{
		Db:           dbConn,
		ReplaceMutex: &sync.Mutex{},
	}, nil
}

func (h postgresAssetMetricsRepositoryHandler) List(ctx context.Context) ([]domain.AssetMetrics, error) {
	query := AssetMetrics.
		SELECT(AssetMetrics.AllColumns).
		FROM(AssetMetrics).
		ORDER_BY(AssetMetrics.Symbol.ASC())

	result := []model.AssetMetrics{}
	if err := query.QueryContext(ctx, h.Db, &result); err != nil {
		return nil, storeErr("list asset metrics", err)
	}

	out := make([]domain.AssetMetrics, 0, len(result))
	for _, m := range result {
		out = append(out, assetMetricsFromModel(m))
	}
	return out, nil
}

func (h postgresAssetMetricsRepositoryHandler) Get(ctx context.Context, symbol string) (*domain.AssetMetrics, error) {
	query := AssetMetrics.
		SELECT(AssetMetrics.AllColumns).
		FROM(AssetMetrics).
		WHERE(AssetMetrics.Symbol.EQ(String(symbol)))

	result := model.AssetMetrics{}
	err := query.QueryContext(ctx, h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("no metrics for %s: %w", symbol, domain.ErrNotFound)
	} else if err != nil {
		return nil, storeErr("get asset metrics", err)
	}

	out := assetMetricsFromModel(result)
	return &out, nil
}

func (h postgresAssetMetricsRepositoryHandler) Replace(ctx context.Context, symbols []string, records []domain.AssetMetrics) error {
	if len(symbols) == 0 && len(records) == 0 {
		return nil
	}

	h.ReplaceMutex.Lock()
	defer h.ReplaceMutex.Unlock()

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("start transaction", err)
	}
	defer tx.Rollback()

	if len(symbols) > 0 {
		exprs := []Expression{}
		for _, s := range symbols {
			exprs = append(exprs, String(s))
		}
		deleteQuery := AssetMetrics.
			DELETE().
			WHERE(AssetMetrics.Symbol.IN(exprs...))
		if _, err := deleteQuery.ExecContext(ctx, tx); err != nil {
			return storeErr("delete asset metrics", err)
		}
	}

	if len(records) > 0 {
		models := make([]model.AssetMetrics, 0, len(records))
		for _, r := range records {
			models = append(models, assetMetricsToModel(r))
		}
		insertQuery := AssetMetrics.
			INSERT(AssetMetrics.AllColumns).
			MODELS(models).
			ON_CONFLICT(AssetMetrics.Symbol).
			DO_UPDATE(
				SET(
					AssetMetrics.LatestPrice.SET(AssetMetrics.EXCLUDED.LatestPrice),
					AssetMetrics.ChangePercent24h.SET(AssetMetrics.EXCLUDED.ChangePercent24h),
					AssetMetrics.AveragePrice7d.SET(AssetMetrics.EXCLUDED.AveragePrice7d),
					AssetMetrics.Timestamp.SET(AssetMetrics.EXCLUDED.Timestamp),
				),
			)
		if _, err := insertQuery.ExecContext(ctx, tx); err != nil {
			return storeErr("insert asset metrics", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit asset metrics", err)
	}
	return nil
}

func (h postgresAssetMetricsRepositoryHandler) Close() error {
	return h.Db.Close()
}

func assetMetricsToModel(m domain.AssetMetrics) model.AssetMetrics {
	return model.AssetMetrics{
		Symbol:           m.Symbol,
		LatestPrice:      m.LatestPrice,
		ChangePercent24h: m.ChangePercent24h,
		AveragePrice7d:   m.AveragePrice7d,
		Timestamp:        m.Timestamp.UTC(),
	}
}

func assetMetricsFromModel(m model.AssetMetrics) domain.AssetMetrics {
	return domain.AssetMetrics{
		Symbol:           m.Symbol,
		LatestPrice:      m.LatestPrice,
		ChangePercent24h: m.ChangePercent24h,
		AveragePrice7d:   m.AveragePrice7d,
		Timestamp:        m.Timestamp.UTC(),
	}
}

type sqliteAssetMetricsRepositoryHandler struct {
	Db           *sql.DB
	ReplaceMutex *sync.Mutex
}

// NewSqliteAssetMetricsRepository opens (or creates) the database file at
// path. Timestamps are stored as RFC 3339 text in UTC.
func NewSqliteAssetMetricsRepository(ctx context.Context, path string) (AssetMetricsRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, storeErr("create db dir", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	dbConn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storeErr("open sqlite", err)
	}
	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, storeErr("ping sqlite", err)
	}

	h := sqliteAssetMetricsRepositoryHandler{
		Db:           dbConn,
		ReplaceMutex: &sync.Mutex{},
	}
	if err := h.migrate(ctx); err != nil {
		dbConn.Close()
		return nil, storeErr("migrate sqlite", err)
	}
	return h, nil
}

func (h sqliteAssetMetricsRepositoryHandler) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS asset_metrics (
			symbol TEXT PRIMARY KEY,
			latest_price REAL NOT NULL,
			change_percent_24h REAL NOT NULL,
			average_price_7d REAL NOT NULL,
			timestamp TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := h.Db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

const sqliteSelectColumns = `SELECT symbol, latest_price, change_percent_24h, average_price_7d, timestamp FROM asset_metrics`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssetMetrics(row rowScanner) (*domain.AssetMetrics, error) {
	m := domain.AssetMetrics{}
	var ts string
	if err := row.Scan(&m.Symbol, &m.LatestPrice, &m.ChangePercent24h, &m.AveragePrice7d, &ts); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q for %s: %w", ts, m.Symbol, err)
	}
	m.Timestamp = parsed.UTC()
	return &m, nil
}

func (h sqliteAssetMetricsRepositoryHandler) List(ctx context.Context) ([]domain.AssetMetrics, error) {
	rows, err := h.Db.QueryContext(ctx, sqliteSelectColumns+` ORDER BY symbol ASC`)
	if err != nil {
		return nil, storeErr("list asset metrics", err)
	}
	defer rows.Close()

	out := []domain.AssetMetrics{}
	for rows.Next() {
		m, err := scanAssetMetrics(rows)
		if err != nil {
			return nil, storeErr("scan asset metrics", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list asset metrics", err)
	}
	return out, nil
}

func (h sqliteAssetMetricsRepositoryHandler) Get(ctx context.Context, symbol string) (*domain.AssetMetrics, error) {
	row := h.Db.QueryRowContext(ctx, sqliteSelectColumns+` WHERE symbol = ?`, symbol)
	m, err := scanAssetMetrics(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no metrics for %s: %w", symbol, domain.ErrNotFound)
	} else if err != nil {
		return nil, storeErr("get asset metrics", err)
	}
	return m, nil
}

func (h sqliteAssetMetricsRepositoryHandler) Replace(ctx context.Context, symbols []string, records []domain.AssetMetrics) error {
	if len(symbols) == 0 && len(records) == 0 {
		return nil
	}

	h.ReplaceMutex.Lock()
	defer h.ReplaceMutex.Unlock()

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("start transaction", err)
	}
	defer tx.Rollback()

	for _, s := range symbols {
		if _, err := tx.ExecContext(ctx, `DELETE FROM asset_metrics WHERE symbol = ?`, s); err != nil {
			return storeErr("delete asset metrics", err)
		}
	}

	for _, r := range records {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO asset_metrics (symbol, latest_price, change_percent_24h, average_price_7d, timestamp)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(symbol) DO UPDATE SET
				latest_price = excluded.latest_price,
				change_percent_24h = excluded.change_percent_24h,
				average_price_7d = excluded.average_price_7d,
				timestamp = excluded.timestamp`,
			r.Symbol,
			r.LatestPrice,
			r.ChangePercent24h,
			r.AveragePrice7d,
			r.Timestamp.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return storeErr("insert asset metrics", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit asset metrics", err)
	}
	return nil
}

func (h sqliteAssetMetricsRepositoryHandler) Close() error {
	return h.Db.Close()
}
