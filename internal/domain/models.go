package domain

// Domain contains core models shared across packages.

// Article is the uniform record every generation operation produces.
// GenerationTimestamp is an ISO-8601 string. Records are never mutated
// after creation.
type Article struct {
	GeneratedTitle      string `json:"generated_title"`
	GeneratedContent    string `json:"generated_content"`
	Topic               string `json:"topic"`
	SourceName          string `json:"source_name"`
	URL                 string `json:"url"`
	GenerationTimestamp string `json:"generation_timestamp"`
	ImageURL            string `json:"image_url"`
	SearchQuery         string `json:"search_query,omitempty"`
}
