package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jortask-app/internal/endpoint"
	"jortask-app/internal/tray"
	"jortask-app/internal/window"
)

// recorder collects calls from both fakes into one ordered log.
type recorder struct {
	calls []string
}

type fakeWindow struct {
	rec       *recorder
	createErr error
	opts      window.Options
}

func (f *fakeWindow) Create(opts window.Options) error {
	f.rec.calls = append(f.rec.calls, "window.create")
	f.opts = opts
	return f.createErr
}

func (f *fakeWindow) Show() { f.rec.calls = append(f.rec.calls, "window.show") }
func (f *fakeWindow) Hide() { f.rec.calls = append(f.rec.calls, "window.hide") }

func (f *fakeWindow) Focus() error {
	f.rec.calls = append(f.rec.calls, "window.focus")
	return nil
}

type fakeSurface struct {
	rec     *recorder
	err     error
	menu    tray.Menu
	onEvent func(string)
}

func (f *fakeSurface) Register(menu tray.Menu, icon []byte, tooltip string, onEvent func(string)) error {
	f.rec.calls = append(f.rec.calls, "tray.register")
	if f.err != nil {
		return f.err
	}
	f.menu, f.onEvent = menu, onEvent
	return nil
}

func (f *fakeSurface) Quit() { f.rec.calls = append(f.rec.calls, "tray.quit") }

type harness struct {
	rec     *recorder
	win     *fakeWindow
	surface *fakeSurface
	windows *window.Manager
	shell   *Shell
	exits   []int
}

func newHarness(opts Options) *harness {
	rec := &recorder{}
	h := &harness{
		rec:     rec,
		win:     &fakeWindow{rec: rec},
		surface: &fakeSurface{rec: rec},
	}
	if opts.Icon == nil {
		opts.Icon = []byte{1}
	}
	h.windows = window.NewManager(h.win)
	h.shell = New(opts, h.windows, tray.NewController(h.surface, Title), func(code int) {
		h.exits = append(h.exits, code)
	})
	return h
}

func (h *harness) event(id string) {
	h.surface.onEvent(id)
}

func TestSetupDebugLoadsLocalhost(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	require.NoError(t, h.shell.Setup())

	assert.Equal(t, "http://localhost:3000/", h.win.opts.Endpoint.String())
	assert.Equal(t, window.MainName, h.win.opts.Name)
	assert.Equal(t, Title, h.win.opts.Title)
	assert.Equal(t, window.Size{Width: 1100, Height: 750}, h.win.opts.Size)
	assert.Equal(t, []string{tray.IDShow, "-", tray.IDQuit}, h.surface.menu.IDs())
	assert.Equal(t, window.Visible, h.windows.State())
}

func TestSetupReleaseLoadsProduction(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Release})
	require.NoError(t, h.shell.Setup())
	assert.Equal(t, "https://www.jortaskmanager.com/", h.shell.Endpoint().String())
	assert.Equal(t, "https://www.jortaskmanager.com/", h.win.opts.Endpoint.String())
}

func TestSetupOrder(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	require.NoError(t, h.shell.Setup())
	assert.Equal(t, []string{"window.create", "tray.register"}, h.rec.calls)
}

func TestSetupWindowFailureAbortsBeforeTray(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	h.win.createErr = errors.New("no display")

	err := h.shell.Setup()
	var cerr *window.CreationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, []string{"window.create"}, h.rec.calls)
}

func TestSetupTrayFailureIsFatal(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	h.surface.err = tray.ErrTrayUnavailable

	err := h.shell.Setup()
	var cerr *tray.CreationError
	require.True(t, errors.As(err, &cerr))
	assert.ErrorIs(t, err, tray.ErrTrayUnavailable)

	h.shell.Dispatch(tray.TerminateProcess{})
	assert.Empty(t, h.exits)
}

func TestSetupUnknownModeIsFatal(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Mode(42)})
	err := h.shell.Setup()
	var rerr *endpoint.ResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Empty(t, h.rec.calls)
}

func TestDispatchBeforeSetupIsDropped(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	h.shell.Dispatch(tray.ShowAndFocusMainWindow{})
	h.shell.Dispatch(tray.TerminateProcess{})
	assert.Empty(t, h.rec.calls)
	assert.Empty(t, h.exits)
}

func TestShowWhileHidden(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug, StartHidden: true})
	require.NoError(t, h.shell.Setup())
	require.Equal(t, window.Hidden, h.windows.State())

	h.rec.calls = nil
	h.event("show")
	assert.Equal(t, window.Visible, h.windows.State())
	assert.Equal(t, []string{"window.show", "window.focus"}, h.rec.calls)

	h.rec.calls = nil
	h.event("show")
	assert.Equal(t, window.Visible, h.windows.State())
	assert.Equal(t, []string{"window.focus"}, h.rec.calls)
}

func TestQuitExitsWithZero(t *testing.T) {
	for _, hidden := range []bool{false, true} {
		h := newHarness(Options{Mode: endpoint.Release, StartHidden: hidden})
		require.NoError(t, h.shell.Setup())

		h.event("quit")
		assert.Equal(t, []int{0}, h.exits)

		h.event("quit")
		h.event("show")
		assert.Equal(t, []int{0}, h.exits, "nothing is dispatched after quit")
	}
}

func TestUnknownEventChangesNothing(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug, StartHidden: true})
	require.NoError(t, h.shell.Setup())

	h.rec.calls = nil
	assert.NotPanics(t, func() { h.event("settings") })
	assert.Empty(t, h.rec.calls)
	assert.Empty(t, h.exits)
	assert.Equal(t, window.Hidden, h.windows.State())
}

func TestBeforeCloseToTray(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug, CloseToTray: true})
	require.NoError(t, h.shell.Setup())

	assert.True(t, h.shell.BeforeClose())
	assert.Equal(t, window.Hidden, h.windows.State())

	h.event("show")
	assert.Equal(t, window.Visible, h.windows.State())
}

func TestBeforeCloseQuits(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	require.NoError(t, h.shell.Setup())

	assert.False(t, h.shell.BeforeClose())
	h.event("show")
	assert.Equal(t, []string{"window.create", "tray.register"}, h.rec.calls)
}

func TestBeforeCloseAfterQuitAllowsClose(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug, CloseToTray: true})
	require.NoError(t, h.shell.Setup())

	h.event("quit")
	assert.False(t, h.shell.BeforeClose())
	assert.Equal(t, window.Visible, h.windows.State())
}

func TestClose(t *testing.T) {
	h := newHarness(Options{Mode: endpoint.Debug})
	require.NoError(t, h.shell.Setup())
	h.shell.Close()
	assert.Contains(t, h.rec.calls, "tray.quit")
}
