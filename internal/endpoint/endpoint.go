package endpoint

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Mode is the build mode the binary was compiled for.
type Mode int

const (
	Debug Mode = iota
	Release
)

const (
	// DevelopmentURL is the local dev server (next dev).
	DevelopmentURL = "http://localhost:3000/"
	// ProductionURL keeps the trailing slash.
	ProductionURL = "https://www.jortaskmanager.com/"
)

var ErrUnknownMode = errors.New("unknown build mode")

// ResolutionError means a compiled-in endpoint could not be used.
type ResolutionError struct {
	Mode Mode
	Raw  string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s endpoint %q: %v", e.Mode, e.Raw, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func (m Mode) String() string {
	switch m {
	case Debug:
		return "debug"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a build flag value to a Mode. "production" is accepted
// as an alias of "release" since that is the tag wails build sets.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dev", "development":
		return Debug, nil
	case "release", "production", "prod":
		return Release, nil
	default:
		return Debug, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Resolve returns the endpoint the main window loads in the given mode.
func Resolve(mode Mode) (*url.URL, error) {
	var raw string
	switch mode {
	case Debug:
		raw = DevelopmentURL
	case Release:
		raw = ProductionURL
	default:
		return nil, &ResolutionError{Mode: mode, Err: ErrUnknownMode}
	}
	u, err := parseAbsolute(raw)
	if err != nil {
		return nil, &ResolutionError{Mode: mode, Raw: raw, Err: err}
	}
	return u, nil
}

// MustResolve is Resolve for startup code: a malformed compiled-in URL
// is a programming error.
func MustResolve(mode Mode) *url.URL {
	u, err := Resolve(mode)
	if err != nil {
		panic(err)
	}
	return u
}

func parseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.New("not an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return u, nil
}
