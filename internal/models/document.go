package models

// Document is a unit of ingestion input.
type Document struct {
	ID       string                 `yaml:"id" json:"id"`
	URL      string                 `yaml:"url" json:"url"`
	Title    string                 `yaml:"title" json:"title"`
	Content  string                 `yaml:"content" json:"content"`
	Metadata map[string]interface{} `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}
