// Package frontend embeds the static dashboard assets served by the HTTP
// controller.
package frontend

import "embed"

//go:embed dist
var StaticFiles embed.FS
