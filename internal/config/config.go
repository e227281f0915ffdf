// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 640
	ArenaOffsetY = 70 // арена рисуется под верхней панелью
	MaxDeltaTime = 0.06

	// Движение
	BaseMoveSpeed = 200.0 // пикселей в секунду при movement_speed = 1

	// Бой
	MaxDamageReduction  = 0.95
	BurnTickInterval    = 0.5
	ZoneTickInterval    = 1.0
	HoTTickInterval     = 1.0
	RegenDelay          = 2.0 // сколько секунд без урона до начала регенерации
	RegenScale          = 0.5
	RegenTickInterval   = 1.0
	DamageWindowSeconds = 3.0
	ThinkInterval       = 0.25
	FleeHPFraction      = 0.15
	HoldRangeFactor     = 0.9 // ИИ встаёт на месте, когда цель ближе AttackRange*0.9

	// Визуальные эффекты
	FloatingTextDuration = 0.9
	FloatingTextRise     = 40.0
	DamageFlashDuration  = 0.15

	// Интерфейс
	HealthBarWidth     = 360
	HealthBarHeight    = 18
	HealthBarY         = 44
	SkillButtonSize    = 56
	SkillButtonGap     = 12
	SkillBarY          = 577
	JoystickX          = 90
	JoystickY          = 480
	JoystickRadius     = 60.0
	JoystickKnobRadius = 24.0
	SpeedButtonX       = 940
	SpeedButtonY       = 18
	SpeedButtonSize    = 14.0
	PauseButtonX       = 900
	PauseButtonY       = 18
	PauseButtonSize    = 12.0
	ClickCooldown      = 200 // мс

	TextCharWidth = 7
	TextOffsetY   = 4
)

// GameSpeeds — доступные множители скорости игры.
var GameSpeeds = []float64{1, 2, 4}

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	ArenaColor        = color.RGBA{34, 38, 52, 255}
	ArenaBorderColor  = color.RGBA{90, 100, 130, 255}
	WallColor         = color.RGBA{110, 110, 125, 255}
	PlayerColor       = color.RGBA{70, 130, 220, 255}
	EnemyColor        = color.RGBA{200, 60, 60, 255}
	HealthColor       = color.RGBA{60, 200, 90, 255}
	HealthBackColor   = color.RGBA{60, 20, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	DamageTextColor   = color.RGBA{255, 210, 80, 255}
	CritTextColor     = color.RGBA{255, 90, 40, 255}
	TrueTextColor     = color.RGBA{245, 245, 245, 255}
	HealTextColor     = color.RGBA{90, 230, 120, 255}
	SlowColor         = color.RGBA{90, 160, 255, 255}
	StunColor         = color.RGBA{240, 220, 60, 255}
	FrozenColor       = color.RGBA{150, 230, 255, 255}
	BurnColor         = color.RGBA{255, 120, 30, 255}
	ZoneColor         = color.RGBA{42, 21, 70, 90} // предумноженный
	FlashColor        = color.RGBA{255, 255, 255, 255}
	ButtonColor       = color.RGBA{50, 60, 80, 230}
	ButtonReadyStroke = color.RGBA{240, 240, 240, 255}
	CooldownOverlay   = color.RGBA{0, 0, 0, 150}
	StageTwoColor     = color.RGBA{255, 140, 40, 255}
	JoystickBaseColor = color.RGBA{40, 40, 40, 40}
	JoystickKnobColor = color.RGBA{110, 110, 110, 110}
	OverlayColor      = color.RGBA{0, 0, 0, 140}
	PauseColor        = color.RGBA{70, 130, 180, 220}
	PlayColor         = color.RGBA{50, 205, 50, 220}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
