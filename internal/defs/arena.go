// internal/defs/arena.go
package defs

// Rect — прямоугольник в координатах арены (левый верхний угол и размеры).
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArenaDefinition — размеры арены и стены.
type ArenaDefinition struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Walls  []Rect  `yaml:"walls"`
}

// MatchDefinition связывает бойцов и настройки ИИ для одного матча.
type MatchDefinition struct {
	Player       string     `yaml:"player"`
	Enemy        string     `yaml:"enemy"`
	EnemyPolicy  PolicyKind `yaml:"enemy_policy"`  // пусто — range_gated
	PlayerPolicy PolicyKind `yaml:"player_policy"` // автопилот для симуляции
	Script       string     `yaml:"script"`
	Seed         int64      `yaml:"seed"`
}
