//go:build !windows

package singleinstance

import (
	"os"
	"os/signal"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func useTempLockDir(t *testing.T) {
	dir := t.TempDir()
	prev := lockDir
	lockDir = func() string { return dir }
	t.Cleanup(func() { lockDir = prev })
}

func TestAcquireTwice(t *testing.T) {
	useTempLockDir(t)

	lock, err := Acquire()
	require.NoError(t, err)

	_, err = Acquire()
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	data, err := os.ReadFile(lockPath())
	require.NoError(t, err)
	pid, err := readPID(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	lock.Release()
	lock.Release()

	again, err := Acquire()
	require.NoError(t, err)
	again.Release()
}

func TestSignalExistingWithoutInstance(t *testing.T) {
	useTempLockDir(t)
	assert.ErrorIs(t, SignalExisting(), ErrNotRunning)
}

func TestSignalExistingIgnoresStaleLockFile(t *testing.T) {
	useTempLockDir(t)

	// A crashed instance leaves its PID behind without holding the lock.
	// Our own PID stands in for an unrelated process that reused it.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGUSR1)
	t.Cleanup(func() { signal.Stop(sig) })

	require.NoError(t, os.WriteFile(lockPath(), []byte(strconv.Itoa(os.Getpid())), 0600))
	assert.ErrorIs(t, SignalExisting(), ErrNotRunning)

	select {
	case <-sig:
		t.Fatal("stale PID was signalled")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestShowRequestQueuedBeforeListen(t *testing.T) {
	useTempLockDir(t)

	requests, err := WatchShowRequests()
	require.NoError(t, err)
	t.Cleanup(requests.Stop)

	lock, err := Acquire()
	require.NoError(t, err)
	t.Cleanup(lock.Release)

	// Arrives while the shell is still starting up.
	require.NoError(t, SignalExisting())

	shown := make(chan struct{}, 1)
	requests.Listen(func() { shown <- struct{}{} })

	select {
	case <-shown:
	case <-time.After(2 * time.Second):
		t.Fatal("queued show request was not delivered")
	}
}

func TestReadPIDRejectsGarbage(t *testing.T) {
	for _, in := range []string{"not-a-pid", "", "-4", "0"} {
		_, err := readPID(strings.NewReader(in))
		assert.ErrorContains(t, err, "invalid PID", in)
	}

	pid, err := readPID(strings.NewReader("123\n"))
	require.NoError(t, err)
	assert.Equal(t, 123, pid)
}
