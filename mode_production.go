//go:build production

package main

// wails build sets the production tag.
var buildMode = "release"
