// Package sound plays the short embedded effects: a pluck for each petal and
// a chime when the question appears.
package sound

import "embed"

//go:embed sounds/*.wav
var soundFiles embed.FS
