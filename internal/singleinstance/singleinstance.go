// Package singleinstance keeps one shell per user session. A second
// launch asks the running one to show its window and exits.
package singleinstance

import "errors"

var (
	ErrAlreadyRunning = errors.New("JOR Task Manager is already running")
	ErrNotRunning     = errors.New("JOR Task Manager is not running")
)
