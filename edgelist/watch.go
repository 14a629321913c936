package edgelist

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/socialgraph/core"
)

// Watcher loads an edge-list file into a graph and reloads it whenever
// the file is written or re-created.
//
// Every reload builds a fresh graph; graphs already handed to callbacks
// are never mutated, so a callback may keep and traverse the graph it
// received without further locking.
type Watcher struct {
	path string

	mu       sync.RWMutex
	current  *core.Graph[string]
	onChange []func(*core.Graph[string])
	onError  []func(error)
}

// NewWatcher creates a Watcher and performs the initial load.
func NewWatcher(path string) (*Watcher, error) {
	w := &Watcher{path: path}
	g, err := w.load()
	if err != nil {
		return nil, err
	}
	w.current = g

	return w, nil
}

// Graph returns the most recently loaded graph.
func (w *Watcher) Graph() *core.Graph[string] {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a callback invoked with every successfully reloaded graph.
func (w *Watcher) OnChange(fn func(*core.Graph[string])) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// OnError registers a callback invoked when a reload fails. The previous
// graph stays current.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = append(w.onError, fn)
}

// Watch starts a background goroutine that reloads the graph on file
// changes. Call the returned stop function to clean up.
func (w *Watcher) Watch() (stop func(), err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("edgelist watcher: %w", err)
	}
	if err := fw.Add(w.path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("edgelist watcher add %s: %w", w.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer fw.Close()
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					w.reload()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.fail(fmt.Errorf("edgelist watcher: %w", err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the file.
func (w *Watcher) Reload() (*core.Graph[string], error) {
	g, err := w.load()
	if err != nil {
		return nil, err
	}
	w.publish(g)

	return g, nil
}

func (w *Watcher) reload() {
	g, err := w.load()
	if err != nil {
		w.fail(err)
		return
	}
	w.publish(g)
}

func (w *Watcher) publish(g *core.Graph[string]) {
	w.mu.Lock()
	w.current = g
	callbacks := make([]func(*core.Graph[string]), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn(g)
	}
}

func (w *Watcher) fail(err error) {
	w.mu.RLock()
	callbacks := make([]func(error), len(w.onError))
	copy(callbacks, w.onError)
	w.mu.RUnlock()

	for _, fn := range callbacks {
		fn(err)
	}
}

func (w *Watcher) load() (*core.Graph[string], error) {
	doc, err := Load(w.path)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}
