package levels

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

const (
	tinyLevel    = "2,2,2,2\n2,1,3,2\n2,0,0,2\n"
	tinySolution = "0,0,0,0\n0,0,0,0\n0,0,1,0\n"
)

func tinyFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/level1.txt":       {Data: []byte(tinyLevel)},
		"solutions/solution1.txt": {Data: []byte(tinySolution)},
		"levels/level2.txt":       {Data: []byte(tinyLevel)},
		"solutions/solution2.txt": {Data: []byte(tinySolution)},
		"levels/level4.txt":       {Data: []byte(tinyLevel)},
		"levels/notes.md":         {Data: []byte("ignored")},
		"pack.yaml":               {Data: []byte("name: Tiny\nlevels:\n  - number: 2\n    name: Second\n")},
	}
}

func TestFSStoreLoad(t *testing.T) {
	s := NewFSStore(tinyFS(), "tiny", 3, 4)

	grid, err := s.LoadLevelGrid(1)
	if err != nil {
		t.Fatalf("LoadLevelGrid() failed: %v", err)
	}
	want := [][]int{{2, 2, 2, 2}, {2, 1, 3, 2}, {2, 0, 0, 2}}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("LoadLevelGrid() = %v, want %v", grid, want)
	}

	sol, err := s.LoadSolutionMask(1)
	if err != nil {
		t.Fatalf("LoadSolutionMask() failed: %v", err)
	}
	if sol[2][2] != 1 {
		t.Errorf("Expected target at (2,2), got %v", sol)
	}
}

func TestFSStoreNotFound(t *testing.T) {
	s := NewFSStore(tinyFS(), "tiny", 3, 4)

	if _, err := s.LoadLevelGrid(9); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("LoadLevelGrid(9) error = %v, want ErrLevelNotFound", err)
	}
	// level4 exists without its solution
	if _, err := s.LoadSolutionMask(4); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("LoadSolutionMask(4) error = %v, want ErrLevelNotFound", err)
	}
}

func TestFSStoreWrongSize(t *testing.T) {
	s := NewFSStore(tinyFS(), "tiny", 15, 15)

	_, err := s.LoadLevelGrid(1)
	if !errors.Is(err, ErrMalformedLevel) {
		t.Fatalf("LoadLevelGrid() error = %v, want ErrMalformedLevel", err)
	}
}

func TestFSStoreListAndCount(t *testing.T) {
	s := NewFSStore(tinyFS(), "tiny", 3, 4)

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	want := []Info{{Number: 1}, {Number: 2, Name: "Second"}, {Number: 4}}
	if !reflect.DeepEqual(infos, want) {
		t.Errorf("List() = %+v, want %+v", infos, want)
	}
	if infos[0].Title() != "Level 1" || infos[1].Title() != "Second" {
		t.Errorf("Title() = %q, %q", infos[0].Title(), infos[1].Title())
	}

	// Count stops at the first gap.
	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestFSStoreEmpty(t *testing.T) {
	s := NewFSStore(fstest.MapFS{}, "empty", 3, 4)

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("Expected no levels, got %v", infos)
	}
	m, err := s.Manifest()
	if err != nil {
		t.Fatalf("Manifest() failed: %v", err)
	}
	if m.Name != "" || len(m.Levels) != 0 {
		t.Errorf("Expected empty manifest, got %+v", m)
	}
}

func TestDirStore(t *testing.T) {
	root := t.TempDir()
	for dir, name := range map[string]string{LevelDir: "level1.txt", SolutionDir: "solution1.txt"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
		data := tinyLevel
		if dir == SolutionDir {
			data = tinySolution
		}
		if err := os.WriteFile(filepath.Join(root, dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := NewDirStore(root, 3, 4)
	if s.Name() != root {
		t.Errorf("Name() = %q, want %q", s.Name(), root)
	}
	if err := Validate(s, 1, 3, 4); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
	if _, err := s.LoadLevelGrid(2); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("LoadLevelGrid(2) error = %v, want ErrLevelNotFound", err)
	}
}

func TestEmbeddedPack(t *testing.T) {
	s := Embedded(15, 15)

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("Expected 4 embedded levels, got %d", n)
	}

	results, err := ValidateAll(s, 15, 15)
	if err != nil {
		t.Fatalf("ValidateAll() failed: %v", err)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("level %d: %v", r.Level.Number, r.Err)
		}
		if r.Level.Name == "" {
			t.Errorf("level %d has no manifest name", r.Level.Number)
		}
	}
}

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid", data: "name: A\nauthor: B\nlevels:\n  - number: 1\n    name: One\n"},
		{name: "empty", data: ""},
		{name: "duplicate", data: "levels:\n  - number: 1\n  - number: 1\n", wantErr: true},
		{name: "zero", data: "levels:\n  - number: 0\n", wantErr: true},
		{name: "bad yaml", data: "levels: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseManifest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
