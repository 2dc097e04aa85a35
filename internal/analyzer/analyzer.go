package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mviana-dev/dreamflow/internal/lexicon"
	"github.com/mviana-dev/dreamflow/internal/models"
)

const (
	maxKeywords      = 5
	minKeywordLength = 4
)

// wordPattern matches runs of letters, digits and underscores, including
// accented letters, so "prédios" stays a single token.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Analyzer classifies dream entries against a fixed lexicon. All state is
// read-only after construction, so one instance can serve concurrent calls.
type Analyzer struct {
	lex *lexicon.Lexicon
}

func New() *Analyzer {
	return NewWithLexicon(lexicon.Default())
}

func NewWithLexicon(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze scores a single dream text. It never fails; empty content yields
// an undefined type, no emotions, no keywords and a neutral positivity.
func (a *Analyzer) Analyze(content string) models.DreamAnalysis {
	lower := strings.ToLower(content)

	return models.DreamAnalysis{
		Type:            a.detectType(lower),
		Emotions:        a.scoreEmotions(lower),
		Keywords:        a.extractKeywords(lower),
		PositivityScore: a.positivity(lower),
		WordCount:       len(strings.Fields(content)),
		AnalyzedAt:      time.Now(),
	}
}

// detectType compares how many distinct future indicators appear against
// how many night indicators do. Ties, including zero on both sides, stay
// undefined.
func (a *Analyzer) detectType(lower string) models.DreamType {
	futureCount := countHits(lower, a.lex.Future)
	nightCount := countHits(lower, a.lex.Night)

	switch {
	case futureCount > nightCount:
		return models.DreamTypeFuture
	case nightCount > futureCount:
		return models.DreamTypeNocturnal
	default:
		return models.DreamTypeUndefined
	}
}

func (a *Analyzer) scoreEmotions(lower string) map[string]int {
	scores := make(map[string]int)
	for emotion, keywords := range a.lex.Emotions {
		if hits := countHits(lower, keywords); hits > 0 {
			scores[emotion] = hits
		}
	}
	return scores
}

// extractKeywords returns the five most frequent tokens longer than four
// runes. Equal frequencies keep the order of first appearance.
func (a *Analyzer) extractKeywords(lower string) []models.KeywordCount {
	freq := make(map[string]int)
	var order []string

	for _, word := range wordPattern.FindAllString(lower, -1) {
		if utf8.RuneCountInString(word) <= minKeywordLength {
			continue
		}
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	keywords := make([]models.KeywordCount, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, models.KeywordCount{Word: word, Count: freq[word]})
	}
	return keywords
}

// positivity starts from a neutral 50, adds 10 per positive keyword and
// subtracts 5 per negative indicator, clamped to [0,100]. Content with no
// words scores exactly 50 regardless of matches.
func (a *Analyzer) positivity(lower string) int {
	if len(strings.Fields(lower)) == 0 {
		return 50
	}

	positiveCount := countHits(lower, a.lex.Emotions[lexicon.Positive])
	negativeCount := countHits(lower, a.lex.Negative)

	score := 50 + positiveCount*10 - negativeCount*5
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// countHits counts how many distinct keywords occur as substrings. Matching
// is deliberately literal: "voar" does not match "voando".
func countHits(lower string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			hits++
		}
	}
	return hits
}
