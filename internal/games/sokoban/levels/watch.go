package levels

import (
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long a level's files must stay quiet before the
// level is reported. Saving a level and its solution yields one event.
const watchDebounce = 100 * time.Millisecond

var changedFileRe = regexp.MustCompile(`^(?:level|solution)(\d+)\.txt$`)

// Watcher reports level numbers whose level or solution file changed on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan int
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the levels and solutions directories under root.
func NewWatcher(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{filepath.Join(root, LevelDir), filepath.Join(root, SolutionDir)} {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan int, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	pending := make(map[int]*time.Timer)
	fire := make(chan int)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			n, ok := levelNumber(event.Name)
			if !ok {
				continue
			}
			if t, ok := pending[n]; ok {
				t.Reset(watchDebounce)
				continue
			}
			pending[n] = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- n:
				case <-w.closeCh:
				}
			})
		case n := <-fire:
			delete(pending, n)
			select {
			case w.Events <- n:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// levelNumber extracts N from a level<N>.txt or solution<N>.txt path.
func levelNumber(name string) (int, bool) {
	m := changedFileRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
