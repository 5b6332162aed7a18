package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/parselib/inspect"
)

// watchFile sends an inspect.ReloadMsg to send whenever path is written or
// recreated. The parent directory is watched so that editors which save by
// renaming a temp file over path keep triggering reloads.
func watchFile(path string, send func(tea.Msg)) (stop func() error, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				data, err := os.ReadFile(abs)
				if err != nil {
					log.Printf("reload %s: %v", abs, err)
				} else {
					log.Printf("reload %s: %d bytes", abs, len(data))
				}
				send(inspect.ReloadMsg{Text: string(data), Err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watch %s: %v", abs, err)
				send(inspect.ReloadMsg{Err: err})
			}
		}
	}()

	return w.Close, nil
}
