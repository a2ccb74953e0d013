package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("Women Safety")
	require.NoError(t, err)
	assert.Equal(t, CategoryWomenSafety, got)

	got, err = ParseCategory("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseCategory("Emergency Services")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestAllCategories_DisplayOrder(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryEmergency,
		CategoryWomenSafety,
		CategoryPublicSafety,
		CategoryDocuments,
		CategoryEnvironmental,
		CategoryTraffic,
	}, AllCategories())
}

func TestCategory_HeadingAndDescription(t *testing.T) {
	for _, c := range AllCategories() {
		assert.NotEqual(t, unknownDescription, c.Heading(), c.String())
		assert.NotEqual(t, unknownDescription, c.Description(), c.String())
	}
	assert.Equal(t, unknownDescription, Category("Other").Heading())
	assert.Equal(t, unknownDescription, Category("Other").Description())
}
