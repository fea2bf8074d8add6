package site

import (
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// Reloader broadcasts a reload signal to every connected /ws/reload
// client after a rebuild.
type Reloader struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewReloader creates an empty Reloader.
func NewReloader() *Reloader {
	return &Reloader{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler returns the /ws/reload HTTP handler.
func (rl *Reloader) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := rl.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("reload websocket upgrade: %v", err)
			return
		}
		rl.mu.Lock()
		rl.clients[conn] = true
		rl.mu.Unlock()

		// Drain until the client goes away.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					rl.drop(conn)
					return
				}
			}
		}()
	}
}

// Broadcast tells every connected client to reload.
func (rl *Reloader) Broadcast() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for conn := range rl.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(rl.clients, conn)
		}
	}
}

func (rl *Reloader) drop(conn *websocket.Conn) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	conn.Close()
	delete(rl.clients, conn)
}

// Watcher rebuilds the site when content files change. Change bursts are
// coalesced: only the trailing event within the debounce window triggers
// a rebuild, the same cancellation discipline the search input uses.
type Watcher struct {
	dir      string
	debounce time.Duration
	rebuild  func() error
	reloader *Reloader

	mu      sync.Mutex
	timer   *time.Timer
	watcher *fsnotify.Watcher
}

// NewWatcher creates a Watcher over the content directory. reloader may
// be nil.
func NewWatcher(dir string, rebuild func() error, reloader *Reloader) *Watcher {
	return &Watcher{
		dir:      dir,
		debounce: 300 * time.Millisecond,
		rebuild:  rebuild,
		reloader: reloader,
	}
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until Stop.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fsw

	// Watch the tree recursively; fsnotify is not recursive on its own.
	err = filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return err
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need watching too.
			if ev.Op&fsnotify.Create != 0 {
				_ = w.watcher.Add(ev.Name)
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		log.Printf("content changed, rebuilding")
		if err := w.rebuild(); err != nil {
			log.Printf("rebuild failed: %v", err)
			return
		}
		if w.reloader != nil {
			w.reloader.Broadcast()
		}
	})
}

// Stop ends watching.
func (w *Watcher) Stop() error {
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
