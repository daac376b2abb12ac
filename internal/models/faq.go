package models

// FAQRecord is a single question/answer pair from the FAQ corpus.
// Records are immutable after ingestion and identified by their
// ordinal position in the source file.
type FAQRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
