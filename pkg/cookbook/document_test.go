package cookbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cookbook/pkg/header"
)

func TestNewDocument(t *testing.T) {
	cb, err := Parse(breakfast)
	require.NoError(t, err)

	t.Run("all recipes", func(t *testing.T) {
		doc := NewDocument(cb, "v1.0.0")
		assert.Equal(t, header.KindCookbook, doc.Kind)
		assert.Equal(t, header.APIVersion, doc.APIVersion)
		assert.Equal(t, "v1.0.0", doc.Metadata[header.MetadataVersion])
		require.Len(t, doc.Recipes, 2)
		assert.Equal(t, "Omelette", doc.Recipes[0].Name)
		assert.Equal(t, "Toast", doc.Recipes[1].Name)
	})

	t.Run("selected recipes", func(t *testing.T) {
		doc := NewDocument(cb, "", "Toast", "Pancakes", "Omelette")
		require.Len(t, doc.Recipes, 2)
		assert.Equal(t, "Toast", doc.Recipes[0].Name)
		assert.Equal(t, "Omelette", doc.Recipes[1].Name)
	})

	t.Run("empty cookbook", func(t *testing.T) {
		doc := NewDocument(New(), "")
		assert.NotNil(t, doc.Recipes)
		assert.Empty(t, doc.Recipes)
	})
}

func TestDocument_Table(t *testing.T) {
	cb, err := Parse([]string{"Omelette", "eggs | 2 | pcs", "milk | 50 | ml", "", "Water"})
	require.NoError(t, err)

	tbl := NewDocument(cb, "").Table()

	assert.Equal(t, []string{"RECIPE", "INGREDIENT", "QUANTITY", "UNIT"}, tbl.Columns)
	assert.Equal(t, [][]string{
		{"Omelette", "eggs", "2", "pcs"},
		{"Omelette", "milk", "50", "ml"},
		{"Water", "", "", ""},
	}, tbl.Rows)
}
