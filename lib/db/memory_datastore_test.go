package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylepad/stylepad-go/lib/exception"
)

func TestMemoryDataStoreLifecycle(t *testing.T) {
	var store = NewMemoryDataStore()

	assert.False(t, store.DoesDocumentExist("doc-1"))

	require.NoError(t, store.CreateDocument("doc-1", []byte("envelope-1")))
	assert.True(t, store.DoesDocumentExist("doc-1"))

	record, err := store.GetDocument("doc-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("envelope-1"), record.Envelope)
	assert.False(t, record.CreatedAt.IsZero())

	require.NoError(t, store.SetDocument("doc-1", []byte("envelope-2")))
	record, err = store.GetDocument("doc-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("envelope-2"), record.Envelope)

	ids, err := store.GetDocumentIds()
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1"}, ids)

	require.NoError(t, store.DeleteDocument("doc-1"))
	assert.False(t, store.DoesDocumentExist("doc-1"))
}

func TestMemoryDataStoreCreateTwice(t *testing.T) {
	var store = NewMemoryDataStore()

	require.NoError(t, store.CreateDocument("doc-1", nil))
	err := store.CreateDocument("doc-1", nil)

	var dbErr *exception.DatabaseError
	require.ErrorAs(t, err, &dbErr)
}

func TestMemoryDataStoreMissingDocument(t *testing.T) {
	var store = NewMemoryDataStore()

	_, err := store.GetDocument("nope")
	var notFound *exception.DocumentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.DocumentId)

	err = store.DeleteDocument("nope")
	require.ErrorAs(t, err, &notFound)
}

func TestMemoryDataStoreSetCreatesWhenAbsent(t *testing.T) {
	var store = NewMemoryDataStore()

	require.NoError(t, store.SetDocument("doc-1", []byte("x")))
	assert.True(t, store.DoesDocumentExist("doc-1"))
}

func TestMemoryDataStoreCopiesEnvelope(t *testing.T) {
	var store = NewMemoryDataStore()
	var envelope = []byte("abc")

	require.NoError(t, store.CreateDocument("doc-1", envelope))
	envelope[0] = 'z'

	record, err := store.GetDocument("doc-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), record.Envelope)
}
