//go:build !windows

package singleinstance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

type Lock struct {
	path string
	file *os.File
}

// lockDir is swapped in tests.
var lockDir = os.TempDir

func lockPath() string {
	return filepath.Join(lockDir(), "jortask-app.lock")
}

func Acquire() (*Lock, error) {
	path := lockPath()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, ErrAlreadyRunning
	}

	// Write PID so a second instance can signal us
	f.Truncate(0)
	f.Seek(0, 0)
	fmt.Fprintf(f, "%d", os.Getpid())
	f.Sync()

	return &Lock{path: path, file: f}, nil
}

func (l *Lock) Release() {
	if l.file != nil {
		unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
		l.file.Close()
		os.Remove(l.path)
		l.file = nil
	}
}

// SignalExisting sends SIGUSR1 to the running instance to show its window.
// The PID is only trusted while its owner still holds the lock; a stale
// file left by a crashed instance yields ErrNotRunning.
func SignalExisting() error {
	f, err := os.OpenFile(lockPath(), os.O_RDONLY, 0)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotRunning
	}
	if err != nil {
		return fmt.Errorf("cannot open lock file: %w", err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err == nil {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		return ErrNotRunning
	}

	pid, err := readPID(f)
	if err != nil {
		return err
	}
	return unix.Kill(pid, unix.SIGUSR1)
}

func readPID(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("cannot read lock file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid PID in lock file: %q", data)
	}
	return pid, nil
}

// ShowRequests queues show requests from other instances. Create it
// before Acquire publishes the PID so an early SIGUSR1 is never fatal.
type ShowRequests struct {
	ch   chan os.Signal
	once sync.Once
}

func WatchShowRequests() (*ShowRequests, error) {
	r := &ShowRequests{ch: make(chan os.Signal, 1)}
	signal.Notify(r.ch, unix.SIGUSR1)
	return r, nil
}

// Listen calls fn for every queued and future request.
func (r *ShowRequests) Listen(fn func()) {
	r.once.Do(func() {
		go func() {
			for range r.ch {
				fn()
			}
		}()
	})
}

func (r *ShowRequests) Stop() {
	signal.Stop(r.ch)
}
