package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mviana-dev/dreamflow/internal/analyzer"
	"github.com/mviana-dev/dreamflow/internal/models"
)

// EmptyMessage is returned for a batch with no entries.
const EmptyMessage = "No dreams to analyze."

type TypeCount struct {
	Type  models.DreamType
	Count int
}

type EmotionTotal struct {
	Emotion string
	Total   int
}

// Stats is the fold of every per-entry analysis in a batch.
type Stats struct {
	TotalDreams    int
	MeanPositivity float64
	Types          []TypeCount    // first-encountered order
	Emotions       []EmotionTotal // descending total, ties keep first-encountered order
}

// Generate runs the analyzer over every entry, in input order, and renders
// the markdown report. An empty batch returns EmptyMessage without touching
// any of the aggregation arithmetic.
func Generate(a *analyzer.Analyzer, entries []models.DreamEntry) string {
	if len(entries) == 0 {
		return EmptyMessage
	}
	return render(Aggregate(a, entries), time.Now())
}

func Aggregate(a *analyzer.Analyzer, entries []models.DreamEntry) Stats {
	stats := Stats{TotalDreams: len(entries)}
	typeIndex := make(map[models.DreamType]int)
	emotionIndex := make(map[string]int)
	positivitySum := 0

	for _, entry := range entries {
		analysis := a.Analyze(entry.Content)

		i, ok := typeIndex[analysis.Type]
		if !ok {
			i = len(stats.Types)
			typeIndex[analysis.Type] = i
			stats.Types = append(stats.Types, TypeCount{Type: analysis.Type})
		}
		stats.Types[i].Count++

		// Map iteration order is random; walk sorted keys so the
		// first-encountered order of tied emotions is reproducible.
		emotions := make([]string, 0, len(analysis.Emotions))
		for emotion := range analysis.Emotions {
			emotions = append(emotions, emotion)
		}
		sort.Strings(emotions)
		for _, emotion := range emotions {
			j, ok := emotionIndex[emotion]
			if !ok {
				j = len(stats.Emotions)
				emotionIndex[emotion] = j
				stats.Emotions = append(stats.Emotions, EmotionTotal{Emotion: emotion})
			}
			stats.Emotions[j].Total += analysis.Emotions[emotion]
		}

		positivitySum += analysis.PositivityScore
	}

	if stats.TotalDreams > 0 {
		stats.MeanPositivity = float64(positivitySum) / float64(stats.TotalDreams)
	}

	sort.SliceStable(stats.Emotions, func(i, j int) bool {
		return stats.Emotions[i].Total > stats.Emotions[j].Total
	})

	return stats
}

func render(stats Stats, generatedAt time.Time) string {
	lines := []string{
		"# 🌙 DREAM ANALYSIS REPORT",
		"",
		"## 📊 General Stats",
		fmt.Sprintf("- **Total dreams analyzed:** %d", stats.TotalDreams),
		fmt.Sprintf("- **Average positivity score:** %.1f/100", stats.MeanPositivity),
		"",
		"## 🎭 Dream Types",
	}

	for _, tc := range stats.Types {
		percentage := float64(tc.Count) / float64(stats.TotalDreams) * 100
		lines = append(lines, fmt.Sprintf("- **%s:** %d dreams (%.1f%%)",
			title(string(tc.Type)), tc.Count, percentage))
	}

	lines = append(lines, "", "## 💭 Dominant Emotions")
	for _, et := range stats.Emotions {
		lines = append(lines, fmt.Sprintf("- **%s:** %d occurrences", title(et.Emotion), et.Total))
	}

	lines = append(lines, "",
		fmt.Sprintf("## 🔮 Generated at: %s", generatedAt.Format("02/01/2006 15:04")),
		"")

	return strings.Join(lines, "\n")
}

func title(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
