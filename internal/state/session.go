// internal/state/session.go
package state

import (
	"log"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/clock"
	"go-boss-arena/internal/defs"

	"golang.org/x/image/font"
)

// Session — общие для всех состояний ресурсы: определения, часы, шрифт.
type Session struct {
	ConfigDir string
	Options   app.Options
	Library   *defs.Library
	Watcher   *defs.Watcher
	Clock     *clock.FrameClock
	FontFace  font.Face

	matches       int64
	reloadPending bool
}

// PollReload забирает накопившиеся события наблюдателя, не блокируясь.
// Сами определения перечитываются только при старте следующего матча.
func (s *Session) PollReload() {
	if s.Watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.Watcher.Events:
			if !ok {
				s.Watcher = nil
				return
			}
			if !s.reloadPending {
				log.Printf("Definitions changed (%s), reloading on next match", name)
			}
			s.reloadPending = true
		case err, ok := <-s.Watcher.Errors:
			if ok {
				log.Printf("Definition watcher error: %v", err)
			}
			return
		default:
			return
		}
	}
}

// ReloadPending — есть ли изменения, ещё не применённые к матчу.
func (s *Session) ReloadPending() bool {
	return s.reloadPending
}

// NewMatch создаёт новый матч. Если файлы определений изменились, они перечитываются;
// при ошибке в них остаётся прежняя библиотека.
func (s *Session) NewMatch() (*app.Game, error) {
	if s.reloadPending {
		s.reloadPending = false
		lib, err := defs.Load(s.ConfigDir)
		if err != nil {
			log.Printf("failed to reload definitions, keeping previous: %v", err)
		} else {
			s.Library = lib
			log.Printf("Definitions reloaded from %s", s.ConfigDir)
		}
	}

	opts := s.Options
	if opts.Seed != 0 {
		opts.Seed += s.matches
	}
	s.matches++
	return app.NewGame(s.Library, opts)
}

// Close освобождает наблюдатель.
func (s *Session) Close() {
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			log.Printf("failed to close definition watcher: %v", err)
		}
		s.Watcher = nil
	}
}
