package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minPort = 20000
	maxPort = 39999
)

// InstanceLock keeps a second desktop countdown from starting while one is
// already showing. It holds a localhost port derived from the application ID.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock binds the port for appID or returns ErrAlreadyRunning.
func AcquireInstanceLock(appID string) (*InstanceLock, error) {
	return acquireOn(lockAddress(appID))
}

func acquireOn(address string) (*InstanceLock, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener}, nil
}

// Addr returns the bound address.
func (lock *InstanceLock) Addr() string {
	if lock == nil || lock.listener == nil {
		return ""
	}
	return lock.listener.Addr().String()
}

// Release frees the lock. It is safe to call on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

func lockAddress(appID string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	port := minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
	return fmt.Sprintf("127.0.0.1:%d", port)
}
