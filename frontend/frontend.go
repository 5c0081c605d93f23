// Package frontend embeds the loader page that hands the webview over to
// the resolved endpoint.
package frontend

import "embed"

//go:embed all:dist
var Assets embed.FS
