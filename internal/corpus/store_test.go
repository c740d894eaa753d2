package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "startups.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, `[
		{"name": "Stripe", "description": "Online payment processing", "source": "YC", "categories": ["FinTech"]},
		{"name": "MediTrack", "description": "Patient scheduling", "source": "Crunchbase", "categories": ["HealthTech", "SaaS"]}
	]`)

	s := NewStore(path, zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	snap := s.Snapshot()
	if snap.Records[0].Name != "Stripe" {
		t.Errorf("first record = %q, want Stripe", snap.Records[0].Name)
	}
}

func TestLoadSkipsMalformedElements(t *testing.T) {
	path := writeCorpus(t, `[
		{"name": "Stripe", "description": "Online payment processing", "source": "YC"},
		{"name": "", "description": "missing name"},
		{"description": 42},
		{"name": "Notion", "description": "Connected workspace", "source": "Product Hunt"}
	]`)

	s := NewStore(path, zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (malformed elements skipped)", s.Len())
	}
}

func TestLoadMissingFileLeavesEmptyCorpus(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestLoadUnparseableFileLeavesEmptyCorpus(t *testing.T) {
	path := writeCorpus(t, `{"not": "an array"}`)
	s := NewStore(path, zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatalf("unparseable file should not be an error, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestLoadReplacesPreviousSnapshot(t *testing.T) {
	path := writeCorpus(t, `[{"name": "Stripe", "description": "Payments", "source": "YC"}]`)
	s := NewStore(path, zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	old := s.Snapshot()

	if err := os.WriteFile(path, []byte(`[
		{"name": "Stripe", "description": "Payments", "source": "YC"},
		{"name": "Linear", "description": "Issue tracking", "source": "Product Hunt"}
	]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after reload", s.Len())
	}
	// The old snapshot is untouched; in-flight searches keep their view.
	if len(old.Records) != 1 {
		t.Errorf("old snapshot mutated: %d records, want 1", len(old.Records))
	}
}

func TestCategories(t *testing.T) {
	path := writeCorpus(t, `[
		{"name": "Stripe", "description": "Payments", "source": "YC", "categories": ["FinTech"]},
		{"name": "Plaid", "description": "Bank APIs", "source": "YC", "categories": ["FinTech", "API"]},
		{"name": "MediTrack", "description": "Scheduling", "source": "CB", "categories": ["HealthTech"]}
	]`)
	s := NewStore(path, zap.NewNop())
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	counts := s.Categories()
	if counts["FinTech"] != 2 || counts["API"] != 1 || counts["HealthTech"] != 1 {
		t.Errorf("Categories() = %v", counts)
	}

	names := s.CategoryNames()
	want := []string{"API", "FinTech", "HealthTech"}
	if len(names) != len(want) {
		t.Fatalf("CategoryNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("CategoryNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
