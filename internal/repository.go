package internal

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/DrGermanius/Receiptmart/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

type IRepository interface {
	SaveRecord(context.Context, model.Record) error
	GetRecord(context.Context, string) (model.Record, error)
}

// Repository is the postgres record store. Conn and Logger are exported so
// tests can build one around sqlmock.
type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations)
	err = goose.Up(db, "migrations")
	if err != nil {
		return nil, err
	}

	return &Repository{Conn: db, Logger: logger}, nil
}

func (r Repository) SaveRecord(ctx context.Context, rec model.Record) error {
	items, err := json.Marshal(rec.Receipt.Items)
	if err != nil {
		return err
	}

	_, err = r.Conn.ExecContext(ctx,
		"INSERT INTO records (id, retailer, purchased_at, total, points, items) VALUES ($1, $2, $3, $4, $5, $6)",
		rec.ID, rec.Receipt.Retailer, rec.Receipt.PurchasedAt, rec.Receipt.Total, rec.Points, items)
	if err != nil {
		return err
	}
	return nil
}

func (r Repository) GetRecord(ctx context.Context, id string) (model.Record, error) {
	var rec model.Record
	var items []byte

	row := r.Conn.QueryRowContext(ctx,
		"SELECT id, retailer, purchased_at, total, points, items FROM records WHERE id = $1", id)
	err := row.Scan(&rec.ID, &rec.Receipt.Retailer, &rec.Receipt.PurchasedAt, &rec.Receipt.Total, &rec.Points, &items)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Record{}, ErrNoRecords
	}
	if err != nil {
		return model.Record{}, err
	}

	err = json.Unmarshal(items, &rec.Receipt.Items)
	if err != nil {
		return model.Record{}, err
	}

	return rec, nil
}
