package window

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var errNoRuntime = errors.New("wails runtime context not available")

// WailsCapability drives the Wails window. Wails allocates the native
// window before OnStartup (shown unless options.App.StartHidden); Create
// configures it and publishes the endpoint for the loader page.
type WailsCapability struct {
	ctx      context.Context
	title    atomic.Value // string
	endpoint atomic.Value // string
}

func NewWailsCapability(ctx context.Context) *WailsCapability {
	return &WailsCapability{ctx: ctx}
}

func (w *WailsCapability) Create(opts Options) error {
	if w.ctx == nil {
		return errNoRuntime
	}
	w.title.Store(opts.Title)
	runtime.WindowSetTitle(w.ctx, opts.Title)
	runtime.WindowSetSize(w.ctx, opts.Size.Width, opts.Size.Height)
	runtime.WindowCenter(w.ctx)
	w.endpoint.Store(opts.Endpoint.String())
	return nil
}

// Endpoint is what the loader page navigates to; empty until Create.
func (w *WailsCapability) Endpoint() string {
	s, _ := w.endpoint.Load().(string)
	return s
}

func (w *WailsCapability) Show() {
	runtime.WindowShow(w.ctx)
	runtime.WindowUnminimise(w.ctx)
}

func (w *WailsCapability) Hide() {
	title, _ := w.title.Load().(string)
	_ = hideNative(title)
	runtime.WindowHide(w.ctx)
}

func (w *WailsCapability) Focus() error {
	runtime.WindowUnminimise(w.ctx)
	runtime.WindowSetAlwaysOnTop(w.ctx, true)
	runtime.WindowSetAlwaysOnTop(w.ctx, false)
	title, _ := w.title.Load().(string)
	return focusNative(title)
}
