// internal/system/ai_script.go
package system

import (
	"fmt"
	"log"

	"go-boss-arena/internal/component"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var scriptModules = []string{"math", "rand"}

// ScriptedPolicy отдаёт решение скрипту tengo. Скрипт получает distance, hp_fraction,
// target_hp_fraction, attack_range, ready и in_range и выставляет behavior и skill.
type ScriptedPolicy struct {
	compiled *tengo.Compiled
}

// NewScriptedPolicy компилирует скрипт один раз; дальше он только перезапускается.
func NewScriptedPolicy(src []byte) (*ScriptedPolicy, error) {
	script := tengo.NewScript(src)
	// Только чистые модули: скрипт ИИ не трогает файлы и процессы
	script.SetImports(stdlib.GetModuleMap(scriptModules...))

	inputs := []struct {
		name  string
		value interface{}
	}{
		{"distance", 0.0},
		{"hp_fraction", 1.0},
		{"target_hp_fraction", 1.0},
		{"attack_range", 0.0},
		{"ready", []interface{}{}},
		{"in_range", []interface{}{}},
		{"behavior", ""},
		{"skill", 0},
	}
	for _, in := range inputs {
		if err := script.Add(in.name, in.value); err != nil {
			return nil, fmt.Errorf("failed to add script variable %s: %w", in.name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile ai script: %w", err)
	}
	return &ScriptedPolicy{compiled: compiled}, nil
}

func (p *ScriptedPolicy) Decide(view AIView) AIDecision {
	fallback := AIDecision{Behavior: ChooseBehavior(view)}

	ready := make([]interface{}, 0, len(view.Skills))
	inRange := make([]interface{}, 0, len(view.Skills))
	for _, sk := range view.Skills {
		if sk.Ready {
			ready = append(ready, sk.Slot)
		}
		if sk.InRange {
			inRange = append(inRange, sk.Slot)
		}
	}

	vars := []struct {
		name  string
		value interface{}
	}{
		{"distance", view.Distance},
		{"hp_fraction", view.HPFraction},
		{"target_hp_fraction", view.TargetHPFraction},
		{"attack_range", view.AttackRange},
		{"ready", ready},
		{"in_range", inRange},
		{"behavior", ""},
		{"skill", 0},
	}
	for _, v := range vars {
		if err := p.compiled.Set(v.name, v.value); err != nil {
			log.Printf("ai script: set %s: %v", v.name, err)
			return fallback
		}
	}
	if err := p.compiled.Run(); err != nil {
		log.Printf("ai script: %v", err)
		return fallback
	}

	decision := AIDecision{Behavior: component.AIBehavior(p.compiled.Get("behavior").String())}
	switch decision.Behavior {
	case component.AIApproach, component.AIHold, component.AIFlee:
	default:
		decision.Behavior = fallback.Behavior
	}
	if slot := p.compiled.Get("skill").Int(); slot >= 1 && slot <= 4 {
		decision.Skills = []int{slot}
	}
	return decision
}
