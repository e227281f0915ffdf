// internal/defs/embed.go
package defs

import "embed"

// DataFS содержит определения по умолчанию; файлы на диске их переопределяют.
//
//go:embed data/*.yaml data/scripts/*.tengo
var DataFS embed.FS
