// Package gamedata provides the embedded generation tables: enemy
// archetypes, item name and stat tables, room template weights and themes.
package gamedata

import "embed"

// dataFS embeds all JSON tables from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
