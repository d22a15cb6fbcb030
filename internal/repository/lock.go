package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"
	"time"

	"anketa/internal/core"
)

// staleAfter is how long a lock may be held before another session may take it.
const staleAfter = 30 * time.Minute

// LockFile is the metadata written into the storage lock file.
type LockFile struct {
	PID       int       `json:"pid"`
	Hostname  string    `json:"hostname"`
	Owner     string    `json:"owner"` // fill-session ID or command name
	Timestamp time.Time `json:"timestamp"`
}

// FileLock keeps a single interactive session writing to the storage directory.
type FileLock struct {
	path   string
	owner  string
	file   *os.File
	logger core.Logger
	remove func(string) error
}

// NewFileLock creates a new file lock.
func NewFileLock(path, owner string, logger core.Logger) *FileLock {
	return &FileLock{
		path:   path,
		owner:  owner,
		logger: logger,
		remove: os.Remove,
	}
}

// Acquire takes the lock without blocking. A lock left by a dead process or held
// longer than staleAfter is taken over, at most once per call.
func (l *FileLock) Acquire() error {
	return l.acquire(true)
}

func (l *FileLock) acquire(takeover bool) error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return &core.LockError{Operation: "acquire", Message: "open lock file", Err: err}
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			l.logger.Warn("failed to close lock file", "path", l.path, "error", closeErr)
		}

		existing, readErr := l.readLockFile()
		if takeover && readErr == nil && isStale(existing) {
			l.logger.Warn("taking over stale lock", "owner", existing.Owner, "pid", existing.PID)
			if rmErr := l.remove(l.path); rmErr != nil && !os.IsNotExist(rmErr) {
				return &core.LockError{
					Operation: "acquire",
					Message:   fmt.Sprintf("remove stale lock held by %s", existing.Owner),
					Err:       rmErr,
				}
			}
			return l.acquire(false)
		}

		if readErr == nil {
			age := time.Since(existing.Timestamp).Round(time.Second)
			return &core.LockError{
				Operation: "acquire",
				Message:   fmt.Sprintf("storage locked by %s (PID %d, %v ago)", existing.Owner, existing.PID, age),
				Err:       err,
			}
		}
		return &core.LockError{Operation: "acquire", Message: "lock held by another process", Err: err}
	}

	l.file = file

	hostname, _ := os.Hostname()
	data, _ := json.MarshalIndent(LockFile{
		PID:       os.Getpid(),
		Hostname:  hostname,
		Owner:     l.owner,
		Timestamp: time.Now(),
	}, "", "  ")

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate lock file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("seek lock file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write lock metadata: %w", err)
	}

	l.logger.Debug("lock acquired", "path", l.path, "owner", l.owner)
	return nil
}

// Release unlocks and removes the lock file. Releasing an unheld lock is a no-op.
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.logger.Warn("failed to release flock", "path", l.path, "error", err)
	}
	if err := l.file.Close(); err != nil {
		l.logger.Warn("failed to close lock file", "path", l.path, "error", err)
	}
	l.file = nil

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return &core.LockError{Operation: "release", Message: "remove lock file", Err: err}
	}
	return nil
}

func (l *FileLock) readLockFile() (*LockFile, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	var lock LockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

// isStale reports whether the holder process is gone or the lock is too old.
func isStale(lock *LockFile) bool {
	process, err := os.FindProcess(lock.PID)
	if err != nil {
		return true
	}

	// On Unix FindProcess always succeeds; signal 0 probes for existence.
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return true
	}

	return time.Since(lock.Timestamp) > staleAfter
}
