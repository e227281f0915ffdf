// cmd/sim/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
	"go-boss-arena/pkg/snapshot"
)

const simStep = 1.0 / 60

type result struct {
	winner   types.Role
	draw     bool
	timedOut bool
	time     float64
	player   app.RoleStats
	enemy    app.RoleStats
}

func main() {
	configDir := flag.String("config", "", "directory with definition overrides")
	seed := flag.Int64("seed", 1, "seed of the first match; match i uses seed+i")
	matches := flag.Int("matches", 1, "number of matches to simulate")
	enemyPolicy := flag.String("policy", "", "enemy AI policy: range_gated, probabilistic, scripted")
	playerPolicy := flag.String("player-policy", "", "player autopilot policy")
	maxTime := flag.Float64("max-time", 300, "match time limit in seconds")
	snapshotPath := flag.String("snapshot", "", "save the final frame of each match (png/jpg)")
	thumb := flag.Int("thumb", 0, "snapshot thumbnail width, 0 keeps full size")
	flag.Parse()

	lib, err := defs.Load(*configDir)
	if err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}

	var results []result
	for i := 0; i < *matches; i++ {
		opts := app.Options{
			Seed:         *seed + int64(i),
			EnemyPolicy:  defs.PolicyKind(*enemyPolicy),
			Autopilot:    true,
			PlayerPolicy: defs.PolicyKind(*playerPolicy),
		}
		r, snap, err := runMatch(lib, opts, *maxTime)
		if err != nil {
			log.Fatalf("match %d: %v", i+1, err)
		}
		results = append(results, r)

		if *snapshotPath != "" {
			path := matchPath(*snapshotPath, i, *matches)
			if err := snapshot.Save(path, snapshot.Render(snap), *thumb); err != nil {
				log.Printf("match %d: %v", i+1, err)
			}
		}
	}

	printSummary(lib, results)
}

func runMatch(lib *defs.Library, opts app.Options, maxTime float64) (result, app.Snapshot, error) {
	g, err := app.NewGame(lib, opts)
	if err != nil {
		return result{}, app.Snapshot{}, err
	}
	for !g.IsOver() && g.GetGameTime() < maxTime {
		g.Update(simStep)
	}

	r := result{
		winner:   g.Winner(),
		draw:     g.IsDraw(),
		timedOut: !g.IsOver(),
		time:     g.GetGameTime(),
		player:   *g.Stats.For(g.ECS.PlayerID),
		enemy:    *g.Stats.For(g.ECS.EnemyID),
	}
	return r, g.Snapshot(), nil
}

// matchPath добавляет номер матча к имени файла, если матчей несколько.
func matchPath(path string, i, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func printSummary(lib *defs.Library, results []result) {
	var playerWins, enemyWins, draws, timeouts int
	var totalTime float64
	var player, enemy app.RoleStats
	for _, r := range results {
		switch {
		case r.timedOut:
			timeouts++
		case r.draw:
			draws++
		case r.winner == types.RolePlayer:
			playerWins++
		default:
			enemyWins++
		}
		totalTime += r.time
		add(&player, r.player)
		add(&enemy, r.enemy)
	}

	n := float64(len(results))
	if n == 0 {
		return
	}
	fmt.Printf("%d matches: %s %d, %s %d, draws %d, timeouts %d, avg time %.1fs\n",
		len(results), lib.Player().Name, playerWins, lib.Enemy().Name, enemyWins, draws, timeouts, totalTime/n)
	for _, row := range []struct {
		name string
		st   app.RoleStats
	}{{lib.Player().Name, player}, {lib.Enemy().Name, enemy}} {
		fmt.Printf("  %-10s avg dealt %8.0f  hits %6.1f  crits %5.1f  healed %7.0f  casts %5.1f  passives %4.1f\n",
			row.name, row.st.DamageDealt/n, float64(row.st.Hits)/n, float64(row.st.Crits)/n,
			row.st.Healed/n, float64(row.st.Casts)/n, float64(row.st.Passives)/n)
	}
}

func add(dst *app.RoleStats, src app.RoleStats) {
	dst.DamageDealt += src.DamageDealt
	dst.Hits += src.Hits
	dst.Crits += src.Crits
	dst.Healed += src.Healed
	dst.Casts += src.Casts
	dst.Passives += src.Passives
}
