package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokastore/soka/internal/models"
)

func TestDecodeListBareArray(t *testing.T) {
	items, err := decodeList[models.Category]("/categories", []byte(`[{"id":1,"name":"Retro","slug":"retro"}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "retro", items[0].Slug)
}

func TestDecodeListItemsEnvelope(t *testing.T) {
	items, err := decodeList[models.CartItem]("/cart", []byte(`{"items":[{"id":3,"productId":9,"quantity":2}]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(9), items[0].ProductID)
}

func TestDecodeListDataEnvelope(t *testing.T) {
	items, err := decodeList[models.Product]("/products", []byte(`{"data":[{"id":5,"name":"Home Kit"}]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Home Kit", items[0].Name)
}

func TestDecodeListMalformedRejected(t *testing.T) {
	// An object with neither items nor data must not read as empty
	_, err := decodeList[models.Product]("/products", []byte(`{"count": 3}`))
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeListGarbageRejected(t *testing.T) {
	_, err := decodeList[models.Product]("/products", []byte(`"surprise"`))
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
