package entries

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mviana-dev/dreamflow/internal/models"
)

// Load reads a JSON array of dream entries from disk. Records are decoded
// permissively: unknown fields are ignored and a missing content field
// becomes the empty string.
func Load(path string) ([]models.DreamEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dreams file: %w", err)
	}
	return FromJSON(data)
}

func FromJSON(data []byte) ([]models.DreamEntry, error) {
	var batch []models.DreamEntry
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("decoding dreams file: %w", err)
	}
	return batch, nil
}

// Sample returns a small built-in batch used when no dreams file is
// configured, handy for scheduled jobs and smoke runs.
func Sample() []models.DreamEntry {
	return []models.DreamEntry{
		{
			Content: "Sonhei que estava voando sobre uma cidade do futuro com carros voadores e prédios verdes",
			Type:    "futuro",
			Date:    "2025-01-10",
		},
		{
			Content: "Tive um pesadelo onde estava correndo de algo escuro e não conseguia encontrar a saída",
			Type:    "noturno",
			Date:    "2025-01-09",
		},
		{
			Content: "Imagino um mundo onde todos vivem em paz e harmonia, sem guerras nem fome",
			Type:    "futuro",
			Date:    "2025-01-08",
		},
	}
}
