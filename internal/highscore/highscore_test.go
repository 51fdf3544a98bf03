package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "highscore.json"))

	score, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("missing file should load as 0, got %d", score)
	}
}

func TestSaveNeverDecreases(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "highscore.json"))

	if err := s.Save(5); err != nil {
		t.Fatalf("Save(5) failed: %v", err)
	}
	if err := s.Save(3); err != nil {
		t.Fatalf("Save(3) failed: %v", err)
	}

	score, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 5 {
		t.Errorf("Load() = %d, expected 5", score)
	}

	// Same score again is idempotent
	if err := s.Save(5); err != nil {
		t.Fatalf("Save(5) failed: %v", err)
	}
	if score, _ := s.Load(); score != 5 {
		t.Errorf("Load() after repeat save = %d, expected 5", score)
	}

	if err := s.Save(40); err != nil {
		t.Fatalf("Save(40) failed: %v", err)
	}
	if score, _ := s.Load(); score != 40 {
		t.Errorf("Load() = %d, expected 40", score)
	}
}

func TestSaveZeroCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.json")
	s := New(path)

	if err := s.Save(0); err != nil {
		t.Fatalf("Save(0) failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != `{"high_score":0}` {
		t.Errorf("file content = %s", data)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json at all"},
		{"empty", ""},
		{"wrong type", `{"high_score": "lots"}`},
		{"negative", `{"high_score": -10}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			s := New(path)
			score, err := s.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if score != 0 {
				t.Errorf("corrupt file should load as 0, got %d", score)
			}

			// A corrupt file is replaced by the next save
			if err := s.Save(7); err != nil {
				t.Fatalf("Save(7) failed: %v", err)
			}
			if score, _ := s.Load(); score != 7 {
				t.Errorf("Load() after save = %d, expected 7", score)
			}
		})
	}
}

func TestLoadExtraKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := os.WriteFile(path, []byte(`{"high_score": 90, "player": "x"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	score, err := New(path).Load()
	if err != nil || score != 90 {
		t.Errorf("Load() = %d, %v; expected 90", score, err)
	}
}
