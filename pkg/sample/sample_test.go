package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/graphconfig/internal/models"
	"github.com/xhad/graphconfig/pkg/config"
	"github.com/xhad/graphconfig/pkg/sample"
)

func TestDocuments(t *testing.T) {
	docs, err := sample.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 4)

	seen := make(map[string]bool)
	for _, doc := range docs {
		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.Content)
		assert.Equal(t, "sample", doc.Metadata["source"])
		assert.False(t, seen[doc.ID], "duplicate id %s", doc.ID)
		seen[doc.ID] = true
	}
}

func TestDocumentsReturnsCopies(t *testing.T) {
	first, err := sample.Documents()
	require.NoError(t, err)
	first[0].Title = "changed"

	second, err := sample.Documents()
	require.NoError(t, err)
	assert.Equal(t, "Retrieval overview", second[0].Title)
}

func TestSelect(t *testing.T) {
	supplied := []models.Document{{ID: "user-1", Content: "uploaded"}}

	// The snapshot does not use the sample corpus
	docs, err := sample.Select(config.IndexConfig(), supplied)
	require.NoError(t, err)
	assert.Equal(t, supplied, docs)

	index := config.IndexConfig()
	index.UseSampleDocs = true
	docs, err = sample.Select(index, supplied)
	require.NoError(t, err)
	assert.Len(t, docs, 4)
	assert.Equal(t, "sample-retrieval-overview", docs[0].ID)
}
