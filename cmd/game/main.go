// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/clock"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

const startFromGame = false // true — начинать сразу с боя, false — с меню

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *clock.FrameClock
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Tick())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := flag.String("config", "", "directory with definition overrides (watched for changes)")
	seed := flag.Int64("seed", 0, "match seed, 0 uses match.yaml")
	enemyPolicy := flag.String("policy", "", "enemy AI policy: range_gated, probabilistic, scripted")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib, err := defs.Load(*configDir)
	if err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}

	session := &state.Session{
		ConfigDir: *configDir,
		Options: app.Options{
			Seed:        *seed,
			EnemyPolicy: defs.PolicyKind(*enemyPolicy),
		},
		Library:  lib,
		Clock:    clock.NewFrameClock(clock.SystemTimeProvider{}, config.MaxDeltaTime, config.GameSpeeds),
		FontFace: basicfont.Face7x13,
	}
	if *configDir != "" {
		watcher, err := defs.NewWatcher(*configDir)
		if err != nil {
			log.Printf("failed to watch %s, hot reload disabled: %v", *configDir, err)
		} else {
			session.Watcher = watcher
		}
	}
	defer session.Close()

	sm := state.NewStateMachine()
	if startFromGame {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			log.Fatalf("failed to start match: %v", err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	game := &AppGame{
		stateMachine: sm,
		clock:        session.Clock,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Boss Arena")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
