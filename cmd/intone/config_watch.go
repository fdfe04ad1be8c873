package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	log "github.com/rs/zerolog/log"
)

// WatchConfig reloads the config whenever the file changes and hands each
// good version to apply. Broken intermediate saves are logged and skipped.
// The watcher stops when done is closed.
func WatchConfig(path string, apply func(*Config), done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create watcher: %w", err)
	}
	go func() {
	loop:
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					break loop
				}
				// editors tend to rename into place rather than write
				if event.Op&(fsnotify.Write|fsnotify.Rename) > 0 {
					c, err := ReadConfig(path)
					if err != nil {
						log.Error().Err(err).Msg("config reload failed")
						continue loop
					}
					log.Info().Str("path", path).Msg("config reloaded")
					apply(c)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					break loop
				}
				log.Error().Err(err).Msg("config watcher")
			case <-done:
				break loop
			}
		}
		watcher.Close()
	}()
	err = watcher.Add(path)
	if err != nil {
		return fmt.Errorf("can't watch %s: %w", path, err)
	}
	return nil
}
