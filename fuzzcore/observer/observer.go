// Package observer implements fuzzcore.CoverageObserver over a POSIX
// SysV shared-memory region, the mechanism spec.md §4.7 describes for
// exporting a per-execution coverage bitmap to a child process.
package observer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// EnvVar is the environment variable name a child process reads to learn
// which shared-memory segment to write its coverage bitmap into.
const EnvVar = "RISCV_FUZZ_SHM_ID"

// SharedMemory is a coverage bitmap backed by a SysV shared-memory
// segment. The zero value is not usable; use New.
type SharedMemory struct {
	id   int
	data []byte
}

// New allocates a shared-memory segment of the given size (bytes) and
// attaches it in this process. The child process attaches the same
// segment by reading EnvVar and calling Attach.
func New(size int) (*SharedMemory, error) {
	id, err := unix.SysvShmGet(unix.IPC_PRIVATE, size, unix.IPC_CREAT|0o600)
	if err != nil {
		return nil, fmt.Errorf("observer: shmget: %w", err)
	}
	data, err := unix.SysvShmAttach(id, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("observer: shmat: %w", err)
	}
	return &SharedMemory{id: id, data: data}, nil
}

// Attach maps an existing segment by id, as read by a child process from
// EnvVar.
func Attach(id int) (*SharedMemory, error) {
	data, err := unix.SysvShmAttach(id, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("observer: shmat: %w", err)
	}
	return &SharedMemory{id: id, data: data}, nil
}

// Name returns the shared-memory segment id, stringified, as the value a
// caller should set EnvVar to before spawning the target.
func (s *SharedMemory) Name() string {
	return fmt.Sprintf("%d", s.id)
}

// Snapshot returns the bitmap observed by the most recent execution. The
// returned slice aliases the shared segment; callers must not retain it
// past the next Reset.
func (s *SharedMemory) Snapshot() []byte {
	return s.data
}

// Reset clears the bitmap before the next execution.
func (s *SharedMemory) Reset() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// Close detaches this process's mapping. It does not remove the
// underlying segment; call Destroy from the process that created it once
// no process needs the segment anymore.
func (s *SharedMemory) Close() error {
	return unix.SysvShmDetach(s.data)
}

// Destroy marks the segment for removal once all attached processes
// detach. Only the creator (the process that called New) should call
// this.
func (s *SharedMemory) Destroy() error {
	_, err := unix.SysvShmCtl(s.id, unix.IPC_RMID, nil)
	return err
}
