//go:build !production

package main

// buildMode can be overridden with -ldflags "-X main.buildMode=release".
var buildMode = "debug"
