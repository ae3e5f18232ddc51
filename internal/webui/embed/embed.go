package embed

import "embed"

// DistFS contains the showcase page served at the web UI root.
//
//go:embed all:dist
var DistFS embed.FS
