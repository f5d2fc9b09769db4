// Package sample bundles a small document set ingestion can use in place
// of externally supplied input.
package sample

import (
	_ "embed"
	"fmt"

	"github.com/xhad/graphconfig/internal/models"
	"github.com/xhad/graphconfig/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed sample_docs.yaml
var sampleDocs []byte

// Documents decodes the bundled corpus. Every call returns fresh values.
func Documents() ([]models.Document, error) {
	var docs []models.Document
	if err := yaml.Unmarshal(sampleDocs, &docs); err != nil {
		return nil, fmt.Errorf("error parsing sample documents: %w", err)
	}
	return docs, nil
}

// Select returns the documents ingestion should use: the bundled corpus
// when the index configuration asks for it, otherwise supplied.
func Select(index config.IndexConfiguration, supplied []models.Document) ([]models.Document, error) {
	if !index.UseSampleDocs {
		return supplied, nil
	}
	return Documents()
}
