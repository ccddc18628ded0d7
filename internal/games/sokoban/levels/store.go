package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/vovakirdan/sokoban/internal/games/sokoban/core"
)

const (
	// LevelDir holds level<N>.txt files.
	LevelDir = "levels"
	// SolutionDir holds solution<N>.txt files.
	SolutionDir = "solutions"
	// ManifestFile optionally names the levels of a pack.
	ManifestFile = "pack.yaml"
)

//go:embed pack
var packFS embed.FS

var levelFileRe = regexp.MustCompile(`^level(\d+)\.txt$`)

// LevelPath returns the pack-relative path of a level file.
func LevelPath(n int) string {
	return path.Join(LevelDir, fmt.Sprintf("level%d.txt", n))
}

// SolutionPath returns the pack-relative path of a solution file.
func SolutionPath(n int) string {
	return path.Join(SolutionDir, fmt.Sprintf("solution%d.txt", n))
}

// Info describes one level of a catalog.
type Info struct {
	Number int
	Name   string
}

// Title returns the level name, or a numbered fallback.
func (i Info) Title() string {
	if i.Name != "" {
		return i.Name
	}
	return fmt.Sprintf("Level %d", i.Number)
}

// Catalog is a level store that can enumerate its levels.
type Catalog interface {
	core.LevelStore
	List() ([]Info, error)
}

// FSStore reads a level pack from a file system:
//
//	levels/level<N>.txt
//	solutions/solution<N>.txt
//	pack.yaml (optional)
type FSStore struct {
	fsys fs.FS
	name string
	rows int
	cols int
}

// NewFSStore creates a store over fsys. Name is used in error messages.
func NewFSStore(fsys fs.FS, name string, rows, cols int) *FSStore {
	return &FSStore{fsys: fsys, name: name, rows: rows, cols: cols}
}

// NewDirStore creates a store over a level directory on disk.
func NewDirStore(root string, rows, cols int) *FSStore {
	return NewFSStore(os.DirFS(root), root, rows, cols)
}

// Embedded returns the built-in level pack.
func Embedded(rows, cols int) *FSStore {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return NewFSStore(sub, "embedded", rows, cols)
}

// Name returns the store's display name.
func (s *FSStore) Name() string {
	return s.name
}

// LoadLevelGrid implements core.LevelStore.
func (s *FSStore) LoadLevelGrid(level int) ([][]int, error) {
	return s.load(LevelPath(level))
}

// LoadSolutionMask implements core.LevelStore.
func (s *FSStore) LoadSolutionMask(level int) ([][]int, error) {
	return s.load(SolutionPath(level))
}

func (s *FSStore) load(name string) ([][]int, error) {
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", ErrLevelNotFound, s.name, name)
		}
		return nil, fmt.Errorf("opening %s/%s: %w", s.name, name, err)
	}
	defer f.Close()

	rows, err := Parse(f, name)
	if err != nil {
		return nil, err
	}
	if err := checkSize(rows, name, s.rows, s.cols); err != nil {
		return nil, err
	}
	return rows, nil
}

// Numbers returns the level numbers present in the pack, sorted.
func (s *FSStore) Numbers() ([]int, error) {
	entries, err := fs.ReadDir(s.fsys, LevelDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s/%s: %w", s.name, LevelDir, err)
	}

	var nums []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := levelFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums, nil
}

// Count returns the number of consecutive levels starting at 1.
func (s *FSStore) Count() (int, error) {
	nums, err := s.Numbers()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range nums {
		if n != count+1 {
			break
		}
		count++
	}
	return count, nil
}

// List returns the levels of the pack with names from the manifest.
func (s *FSStore) List() ([]Info, error) {
	nums, err := s.Numbers()
	if err != nil {
		return nil, err
	}
	m, err := s.Manifest()
	if err != nil {
		return nil, err
	}

	infos := make([]Info, len(nums))
	for i, n := range nums {
		infos[i] = Info{Number: n, Name: m.LevelName(n)}
	}
	return infos, nil
}

// Manifest reads pack.yaml. A missing manifest yields an empty one.
func (s *FSStore) Manifest() (*Manifest, error) {
	data, err := fs.ReadFile(s.fsys, ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("reading %s/%s: %w", s.name, ManifestFile, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", s.name, ManifestFile, err)
	}
	return m, nil
}
