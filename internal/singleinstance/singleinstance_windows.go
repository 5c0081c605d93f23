//go:build windows

package singleinstance

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

const (
	mutexName = `Global\JORTaskManager_SingleInstance`
	eventName = `Local\JORTaskManager_Show`
)

type Lock struct {
	handle windows.Handle
}

func Acquire() (*Lock, error) {
	name, err := windows.UTF16PtrFromString(mutexName)
	if err != nil {
		return nil, err
	}
	handle, err := windows.CreateMutex(nil, false, name)
	if err != nil {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			return nil, ErrAlreadyRunning
		}
		return nil, err
	}
	return &Lock{handle: handle}, nil
}

func (l *Lock) Release() {
	if l.handle != 0 {
		windows.CloseHandle(l.handle)
		l.handle = 0
	}
}

// ShowRequests wraps a named auto-reset event. A SetEvent before Listen
// stays signalled until the wait loop picks it up.
type ShowRequests struct {
	event windows.Handle
	once  sync.Once
}

func WatchShowRequests() (*ShowRequests, error) {
	name, err := windows.UTF16PtrFromString(eventName)
	if err != nil {
		return nil, err
	}
	ev, err := windows.CreateEvent(nil, 0, 0, name)
	if err != nil && !errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		return nil, err
	}
	return &ShowRequests{event: ev}, nil
}

// Listen calls fn for every queued and future request.
func (r *ShowRequests) Listen(fn func()) {
	r.once.Do(func() {
		go func() {
			for {
				s, err := windows.WaitForSingleObject(r.event, windows.INFINITE)
				if err != nil || s != windows.WAIT_OBJECT_0 {
					return
				}
				fn()
			}
		}()
	})
}

func (r *ShowRequests) Stop() {
	windows.CloseHandle(r.event)
}

// SignalExisting wakes the running instance's ShowRequests.
func SignalExisting() error {
	name, err := windows.UTF16PtrFromString(eventName)
	if err != nil {
		return err
	}
	ev, err := windows.OpenEvent(windows.EVENT_MODIFY_STATE, false, name)
	if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
		return ErrNotRunning
	}
	if err != nil {
		return fmt.Errorf("open show event: %w", err)
	}
	defer windows.CloseHandle(ev)
	return windows.SetEvent(ev)
}
