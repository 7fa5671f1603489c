package db

import (
	"sync"
	"time"

	"github.com/stylepad/stylepad-go/lib/exception"
)

type MemoryDataStore struct {
	mu            sync.RWMutex
	documentStore map[string]DocumentRecord
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		documentStore: make(map[string]DocumentRecord),
	}
}

func (m *MemoryDataStore) DoesDocumentExist(documentId string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var _, ok = m.documentStore[documentId]
	return ok
}

func (m *MemoryDataStore) CreateDocument(documentId string, envelope []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documentStore[documentId]; ok {
		return exception.NewDatabaseError("document already exists: "+documentId, nil)
	}

	var now = time.Now()
	m.documentStore[documentId] = DocumentRecord{
		Id:        documentId,
		Envelope:  append([]byte(nil), envelope...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (m *MemoryDataStore) GetDocument(documentId string) (*DocumentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var record, ok = m.documentStore[documentId]
	if !ok {
		return nil, exception.NewDocumentNotFoundError(documentId)
	}
	return &record, nil
}

func (m *MemoryDataStore) SetDocument(documentId string, envelope []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var record, ok = m.documentStore[documentId]
	if !ok {
		var now = time.Now()
		record = DocumentRecord{Id: documentId, CreatedAt: now}
	}
	record.Envelope = append([]byte(nil), envelope...)
	record.UpdatedAt = time.Now()
	m.documentStore[documentId] = record
	return nil
}

func (m *MemoryDataStore) DeleteDocument(documentId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documentStore[documentId]; !ok {
		return exception.NewDocumentNotFoundError(documentId)
	}
	delete(m.documentStore, documentId)
	return nil
}

func (m *MemoryDataStore) GetDocumentIds() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var documentIds []string
	for id := range m.documentStore {
		documentIds = append(documentIds, id)
	}
	return documentIds, nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}
