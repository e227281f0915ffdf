// internal/defs/loader.go
package defs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	ArenaFile      = "arena.yaml"
	CombatantsFile = "combatants.yaml"
	SkillsFile     = "skills.yaml"
	MatchFile      = "match.yaml"
)

// Library holds every definition needed to start a match.
// It is built once per match and never mutated while the match runs.
type Library struct {
	Arena      ArenaDefinition
	Match      MatchDefinition
	Combatants map[string]*CombatantDefinition
	Skills     map[string]*SkillDefinition
	Scripts    map[string][]byte
}

// Source читает файлы определений: сначала с диска (если задан Dir), затем из встроенных.
type Source struct {
	Dir string
}

// ReadFile возвращает содержимое файла определений.
func (s Source) ReadFile(name string) ([]byte, error) {
	if s.Dir != "" {
		data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(name)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return fs.ReadFile(DataFS, path.Join("data", name))
}

// Load reads and validates all definitions. An empty dir uses the embedded defaults;
// otherwise every file found in dir overrides its embedded counterpart.
func Load(dir string) (*Library, error) {
	src := Source{Dir: dir}
	lib := &Library{
		Combatants: make(map[string]*CombatantDefinition),
		Skills:     make(map[string]*SkillDefinition),
		Scripts:    make(map[string][]byte),
	}

	if err := readYAML(src, ArenaFile, &lib.Arena); err != nil {
		return nil, err
	}
	if err := readYAML(src, MatchFile, &lib.Match); err != nil {
		return nil, err
	}

	var combatants []*CombatantDefinition
	if err := readYAML(src, CombatantsFile, &combatants); err != nil {
		return nil, err
	}
	var skills []*SkillDefinition
	if err := readYAML(src, SkillsFile, &skills); err != nil {
		return nil, err
	}

	var errs []error
	for _, def := range combatants {
		if _, dup := lib.Combatants[def.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate combatant %q", ErrInvalidDefinition, def.ID))
			continue
		}
		def.Stats.applyDefaults()
		lib.Combatants[def.ID] = def
	}
	for _, def := range skills {
		if _, dup := lib.Skills[def.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate skill %q", ErrInvalidDefinition, def.ID))
			continue
		}
		lib.Skills[def.ID] = def
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if lib.Match.Script != "" {
		data, err := src.ReadFile(lib.Match.Script)
		if err != nil {
			return nil, fmt.Errorf("failed to read ai script %s: %w", lib.Match.Script, err)
		}
		lib.Scripts[lib.Match.Script] = data
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d combatant and %d skill definitions", len(lib.Combatants), len(lib.Skills))
	return lib, nil
}

func readYAML(src Source, name string, out any) error {
	data, err := src.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// SkillsFor возвращает умения бойца, отсортированные по слоту.
func (l *Library) SkillsFor(def *CombatantDefinition) []*SkillDefinition {
	out := make([]*SkillDefinition, 0, len(def.Skills))
	for _, id := range def.Skills {
		if skill, ok := l.Skills[id]; ok {
			out = append(out, skill)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// Player возвращает определение игрока из match.yaml.
func (l *Library) Player() *CombatantDefinition {
	return l.Combatants[l.Match.Player]
}

// Enemy возвращает определение противника из match.yaml.
func (l *Library) Enemy() *CombatantDefinition {
	return l.Combatants[l.Match.Enemy]
}
