package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"finstmt/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "mapping.json"))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	st := tempStore(t)

	m := st.Load()
	if len(m) != 0 {
		t.Fatalf("Load of missing file returned %d entries, want 0", len(m))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := tempStore(t)

	want := Mapping{
		"Cash":  model.CurrentAssets,
		"Sales": model.Revenue,
		"Rent":  model.OperatingExpenses,
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := st.Load()
	if len(got) != len(want) {
		t.Fatalf("Load returned %d entries, want %d", len(got), len(want))
	}
	for account, c := range want {
		if got[account] != c {
			t.Errorf("Load[%q] = %q, want %q", account, got[account], c)
		}
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	st := tempStore(t)
	if err := st.Save(Mapping{"Cash": model.CurrentAssets}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(st.Path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "mapping.json" {
		t.Fatalf("mapping dir contains %d entries, want just mapping.json", len(entries))
	}
}

func TestSaveWritesPlainJSONObject(t *testing.T) {
	st := tempStore(t)
	if err := st.Save(Mapping{"Cash": model.CurrentAssets}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(st.Path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("mapping file is not a flat JSON object: %v", err)
	}
	if raw["Cash"] != "Current Assets" {
		t.Fatalf("raw value = %q, want %q", raw["Cash"], "Current Assets")
	}
}

func TestLoadDropsUnknownCategories(t *testing.T) {
	st := tempStore(t)
	raw := `{"Cash": "Current Assets", "Weird": "Not A Category", "": "Equity"}`
	if err := os.WriteFile(st.Path, []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := st.Load()
	if len(m) != 1 {
		t.Fatalf("Load returned %d entries, want 1", len(m))
	}
	if m["Cash"] != model.CurrentAssets {
		t.Fatalf("Load[Cash] = %q, want Current Assets", m["Cash"])
	}
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	st := tempStore(t)
	if err := os.WriteFile(st.Path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if m := st.Load(); len(m) != 0 {
		t.Fatalf("Load of corrupt file returned %d entries, want 0", len(m))
	}
}

func TestResolveDefault(t *testing.T) {
	m := Mapping{"Sales": model.Revenue}

	if got := Resolve("Sales", m); got != model.Revenue {
		t.Fatalf("Resolve(Sales) = %q, want Revenue", got)
	}
	if got := Resolve("Unknown Account", m); got != model.DefaultCategory() {
		t.Fatalf("Resolve(unknown) = %q, want %q", got, model.DefaultCategory())
	}
	// Exact, case-sensitive key match
	if got := Resolve("sales", m); got != model.DefaultCategory() {
		t.Fatalf("Resolve(sales) = %q, want the default", got)
	}
}
