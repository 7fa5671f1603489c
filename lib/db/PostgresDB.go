package db

import (
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/stylepad/stylepad-go/lib/exception"
)

type PostgresDB struct {
	sqlDB *sql.DB
	sb    sq.StatementBuilderType
}

func NewPostgresDB(url string) (*PostgresDB, error) {
	sqlDB, err := sql.Open("postgres", url)
	if err != nil {
		return nil, exception.NewDatabaseError("error opening postgres database", err)
	}

	var d = &PostgresDB{
		sqlDB: sqlDB,
		sb:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	if err := d.migrate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *PostgresDB) migrate() error {
	var _, err = d.sqlDB.Exec(`CREATE TABLE IF NOT EXISTS document (
		id TEXT PRIMARY KEY,
		envelope BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return exception.NewDatabaseError("error migrating document table", err)
	}
	return nil
}

func (d *PostgresDB) DoesDocumentExist(documentId string) bool {
	resultedSQL, args, err := d.sb.
		Select("1").
		From("document").
		Where(sq.Eq{"id": documentId}).
		ToSql()
	if err != nil {
		return false
	}

	var one int
	err = d.sqlDB.QueryRow(resultedSQL, args...).Scan(&one)
	return err == nil
}

func (d *PostgresDB) CreateDocument(documentId string, envelope []byte) error {
	resultedSQL, args, err := d.sb.
		Insert("document").
		Columns("id", "envelope").
		Values(documentId, envelope).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = d.sqlDB.Exec(resultedSQL, args...); err != nil {
		return exception.NewDatabaseError("error creating document", err)
	}
	return nil
}

func (d *PostgresDB) GetDocument(documentId string) (*DocumentRecord, error) {
	resultedSQL, args, err := d.sb.
		Select("id", "envelope", "created_at", "updated_at").
		From("document").
		Where(sq.Eq{"id": documentId}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var record DocumentRecord
	err = d.sqlDB.QueryRow(resultedSQL, args...).
		Scan(&record.Id, &record.Envelope, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, exception.NewDocumentNotFoundError(documentId)
	}
	if err != nil {
		return nil, exception.NewDatabaseError("error reading document", err)
	}
	return &record, nil
}

func (d *PostgresDB) SetDocument(documentId string, envelope []byte) error {
	resultedSQL, args, err := d.sb.
		Insert("document").
		Columns("id", "envelope", "updated_at").
		Values(documentId, envelope, time.Now()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			envelope = excluded.envelope,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = d.sqlDB.Exec(resultedSQL, args...); err != nil {
		return exception.NewDatabaseError("error saving document", err)
	}
	return nil
}

func (d *PostgresDB) DeleteDocument(documentId string) error {
	resultedSQL, args, err := d.sb.
		Delete("document").
		Where(sq.Eq{"id": documentId}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return exception.NewDatabaseError("error deleting document", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return exception.NewDocumentNotFoundError(documentId)
	}
	return nil
}

func (d *PostgresDB) GetDocumentIds() ([]string, error) {
	resultedSQL, _, err := d.sb.
		Select("id").
		From("document").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL)
	if err != nil {
		return nil, exception.NewDatabaseError("error listing documents", err)
	}
	defer rows.Close()

	var documentIds []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, exception.NewDatabaseError("error scanning document id", err)
		}
		documentIds = append(documentIds, id)
	}
	return documentIds, rows.Err()
}

func (d *PostgresDB) Close() error {
	return d.sqlDB.Close()
}
