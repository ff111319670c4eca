package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFilterSlice(t *testing.T) {
	type testCase struct {
		tag      string
		input    []string
		expected []string
	}

	reference := []string{"wind", "sun", "solar"}
	cases := []testCase{
		{"empty input returns the reference", nil, reference},
		{"keeps input order", []string{"solar", "wind"}, []string{"solar", "wind"}},
		{"drops unknown values", []string{"snow", "sun"}, []string{"sun"}},
		{"nothing valid", []string{"snow"}, []string{}},
	}

	for _, c := range cases {
		t.Log(c.tag)

		result := FilterSlice(c.input, reference, "")
		if !slices.Equal(result, c.expected) {
			t.Errorf("Got %v, wanted %v", result, c.expected)
		}
	}
}

func TestNewLoggerFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "import_log.json")

	logger, closer, err := NewLogger(false, logFile)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("Importing wind data...")
	logger.Debug("not written at info level")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}

	var entry map[string]any
	if err := json.Unmarshal(content, &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %s", content, err)
	}

	if entry["msg"] != "Importing wind data..." {
		t.Errorf("Got %v, wanted %v", entry["msg"], "Importing wind data...")
	}
	if run, ok := entry["run"].(string); !ok || run == "" {
		t.Errorf("missing run id in %v", entry)
	}
}
