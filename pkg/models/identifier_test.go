package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompanyID(t *testing.T) {
	id, err := NewCompanyID("ABCD1")
	require.NoError(t, err)
	assert.Equal(t, "ABCD1", id.String())

	for _, token := range []string{"abcd1", "ABCD", "ABCDE1", "AB1D1", "ABCD12", ""} {
		_, err := NewCompanyID(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

func TestNewSKU(t *testing.T) {
	sku, err := NewSKU("WXYZ9")
	require.NoError(t, err)
	assert.Equal(t, "WXYZ9", sku.String())

	_, err = NewSKU("wxyz9")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "item_sku", verr.Field)
}
