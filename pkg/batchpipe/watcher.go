package batchpipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/barelyhuman/go/poller"
)

type Watcher struct {
	poller    *poller.Poller
	logger    *Logger
	recompile chan string
	ignored   []string
}

// NewWatcher polls every interval milliseconds.
func NewWatcher(logger *Logger, interval int) *Watcher {
	return &Watcher{
		poller:    poller.NewPollWatcher(interval),
		logger:    logger,
		recompile: make(chan string, 1),
	}
}

func (w *Watcher) AddDir(path string) {
	w.poller.Add(path)
}

// Ignore drops events for anything under dir, typically the output
// directory when it sits inside a watched tree.
func (w *Watcher) Ignore(dir string) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	w.ignored = append(w.ignored, dir)
}

func (w *Watcher) isIgnored(path string) bool {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	for _, dir := range w.ignored {
		if within(dir, path) {
			return true
		}
	}
	return false
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Changes yields the path of a changed file. Bursts of changes collapse
// into a single pending event.
func (w *Watcher) Changes() <-chan string {
	return w.recompile
}

func (w *Watcher) Start() {
	go w.poller.Start()
	go func() {
		for {
			select {
			case evt := <-w.poller.Events:
				if w.isIgnored(evt.Path) {
					continue
				}
				w.logger.Debug(fmt.Sprintf("Change Event: %v", evt.Path))

				// deleted files have nothing left to process
				if _, err := os.Stat(evt.Path); err != nil {
					if !os.IsNotExist(err) {
						w.logger.Error(err.Error())
					}
					continue
				}

				select {
				case w.recompile <- evt.Path:
				default:
				}
			case err := <-w.poller.Errors:
				w.logger.Error(err.Error())
			}
		}
	}()
}
