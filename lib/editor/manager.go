package editor

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/attr"
	"github.com/stylepad/stylepad-go/lib/codec"
	"github.com/stylepad/stylepad-go/lib/db"
	"github.com/stylepad/stylepad-go/lib/fonts"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
)

// Manager owns the open documents and moves them through the store. The
// store only ever sees envelope bytes; all decoding and encoding happens
// here via the codec.
type Manager struct {
	mu       sync.Mutex
	store    db.DataStore
	resolver fonts.Resolver
	logger   *zap.SugaredLogger
	open     map[string]*Document
}

func NewManager(store db.DataStore, resolver fonts.Resolver, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		store:    store,
		resolver: resolver,
		logger:   logger,
		open:     make(map[string]*Document),
	}
}

// CreateDocument makes a new document seeded with text in the default style,
// persists it, and leaves it open.
func (m *Manager) CreateDocument(text string) (*Document, error) {
	var buffer = runbuffer.New()
	if text != "" {
		buffer.InsertText(0, text, attr.Default().WithFontFamily(m.resolver.DefaultFamily()))
	}

	var id = uuid.NewString()
	var document = newDocument(id, codec.NewDocument(buffer), m.resolver, m.logger)

	envelope, err := document.encode()
	if err != nil {
		return nil, err
	}
	if err := m.store.CreateDocument(id, envelope); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.open[id] = document
	m.mu.Unlock()

	m.logger.Infow("document created", "document", id, "chars", buffer.TotalLength())
	return document, nil
}

// GetDocument returns the open document, loading and decoding it from the
// store on first access. Decode failures surface to the caller; the document
// stays closed.
func (m *Manager) GetDocument(id string) (*Document, error) {
	m.mu.Lock()
	if document, ok := m.open[id]; ok {
		m.mu.Unlock()
		return document, nil
	}
	m.mu.Unlock()

	record, err := m.store.GetDocument(id)
	if err != nil {
		return nil, err
	}

	decoded, err := codec.Decode(record.Envelope)
	if err != nil {
		m.logger.Warnw("refusing to open corrupt document", "document", id, "error", err)
		return nil, err
	}

	var document = newDocument(id, decoded, m.resolver, m.logger)

	m.mu.Lock()
	// Another caller may have opened it meanwhile; keep the first instance so
	// there is exactly one buffer owner per document.
	if existing, ok := m.open[id]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.open[id] = document
	m.mu.Unlock()

	return document, nil
}

// SaveDocument encodes the open document and writes the envelope back.
func (m *Manager) SaveDocument(id string) error {
	document, err := m.GetDocument(id)
	if err != nil {
		return err
	}

	envelope, err := document.encode()
	if err != nil {
		return err
	}
	return m.store.SetDocument(id, envelope)
}

// CloseDocument saves and evicts an open document. Closing a document that
// is not open is a no-op.
func (m *Manager) CloseDocument(id string) error {
	m.mu.Lock()
	var _, ok = m.open[id]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	if err := m.SaveDocument(id); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.open, id)
	m.mu.Unlock()
	return nil
}

// DeleteDocument removes a document from the store and evicts it.
func (m *Manager) DeleteDocument(id string) error {
	m.mu.Lock()
	delete(m.open, id)
	m.mu.Unlock()
	return m.store.DeleteDocument(id)
}

func (m *Manager) DocumentIds() ([]string, error) {
	return m.store.GetDocumentIds()
}
