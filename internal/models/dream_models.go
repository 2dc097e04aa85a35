package models

import "time"

type DreamType string

const (
	DreamTypeFuture    DreamType = "future"
	DreamTypeNocturnal DreamType = "nocturnal"
	DreamTypeUndefined DreamType = "undefined"
)

// DreamEntry is one journal record. Analysis reads Content only; the
// remaining fields pass through untouched.
type DreamEntry struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
	Date    string `json:"date,omitempty"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type DreamAnalysis struct {
	Type            DreamType      `json:"type"`
	Emotions        map[string]int `json:"emotions"`
	Keywords        []KeywordCount `json:"keywords"`
	PositivityScore int            `json:"positivity_score"`
	WordCount       int            `json:"word_count"`
	AnalyzedAt      time.Time      `json:"analyzed_at"`
}
