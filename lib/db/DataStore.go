package db

import (
	"time"

	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/settings"
)

// DocumentRecord is one persisted document: its id and the encoded envelope
// bytes produced by the codec. The store never looks inside the envelope.
type DocumentRecord struct {
	Id        string
	Envelope  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentMethods interface {
	DoesDocumentExist(documentId string) bool
	CreateDocument(documentId string, envelope []byte) error
	GetDocument(documentId string) (*DocumentRecord, error)
	SetDocument(documentId string, envelope []byte) error
	DeleteDocument(documentId string) error
	GetDocumentIds() ([]string, error)
}

type DataStore interface {
	DocumentMethods
	Close() error
}

// NewDataStore picks the backend configured in settings.
func NewDataStore(loaded *settings.Settings, logger *zap.SugaredLogger) (DataStore, error) {
	switch loaded.DBType {
	case settings.POSTGRES:
		logger.Info("Using Postgres document store")
		return NewPostgresDB(loaded.DBURL)
	case settings.MEMORY:
		logger.Info("Using in-memory document store")
		return NewMemoryDataStore(), nil
	default:
		logger.Info("Using SQLite document store at " + loaded.DBFilename)
		return NewSQLiteDB(loaded.DBFilename)
	}
}
