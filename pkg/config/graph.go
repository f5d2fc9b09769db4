package config

// AgentConfiguration parameterizes query-time retrieval for the
// retrieval assistant.
type AgentConfiguration struct {
	QueryModel        string `yaml:"queryModel" json:"queryModel"`
	RetrieverProvider string `yaml:"retrieverProvider" json:"retrieverProvider"`
	K                 int    `yaml:"k" json:"k"`
}

// IndexConfiguration parameterizes document ingestion.
type IndexConfiguration struct {
	UseSampleDocs     bool   `yaml:"useSampleDocs" json:"useSampleDocs"`
	RetrieverProvider string `yaml:"retrieverProvider" json:"retrieverProvider"`
}

var retrievalAssistantStreamConfig = AgentConfiguration{
	QueryModel:        "ollama/llama3:8b",
	RetrieverProvider: "supabase",
	K:                 5,
}

// indexConfig is the configuration for the indexing/ingestion process.
var indexConfig = IndexConfiguration{
	UseSampleDocs:     false,
	RetrieverProvider: "supabase",
}

// RetrievalAssistantStreamConfig returns a copy of the agent configuration
// used by the streaming retrieval assistant.
func RetrievalAssistantStreamConfig() AgentConfiguration {
	return retrievalAssistantStreamConfig
}

// IndexConfig returns a copy of the ingestion configuration.
func IndexConfig() IndexConfiguration {
	return indexConfig
}
