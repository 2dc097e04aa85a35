package entries

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`[
		{"content": "Sonhei com o mar", "type": "noturno", "date": "2025-02-01"},
		{"date": "2025-02-02"},
		{"content": "", "mood": "calm"}
	]`)

	batch, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if len(batch) != 3 {
		t.Fatalf("got %d entries, want 3", len(batch))
	}

	if batch[0].Content != "Sonhei com o mar" || batch[0].Date != "2025-02-01" {
		t.Errorf("batch[0] = %+v", batch[0])
	}
	// Missing content decodes to the empty string rather than failing.
	if batch[1].Content != "" {
		t.Errorf("batch[1].Content = %q, want empty", batch[1].Content)
	}
	// Unknown fields are ignored.
	if batch[2].Content != "" {
		t.Errorf("batch[2].Content = %q, want empty", batch[2].Content)
	}
}

func TestFromJSONInvalid(t *testing.T) {
	if _, err := FromJSON([]byte(`{"content": "not an array"}`)); err == nil {
		t.Error("FromJSON() should fail on a non-array document")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dreams.json")
	if err := os.WriteFile(path, []byte(`[{"content": "voando alto"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	batch, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(batch) != 1 || batch[0].Content != "voando alto" {
		t.Errorf("batch = %+v", batch)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestSample(t *testing.T) {
	batch := Sample()
	if len(batch) != 3 {
		t.Fatalf("got %d sample entries, want 3", len(batch))
	}
	for i, entry := range batch {
		if entry.Content == "" {
			t.Errorf("sample entry %d has empty content", i)
		}
	}
}
