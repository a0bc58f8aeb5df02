package system

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by host queries not available on this platform
var ErrUnsupported = errors.New("not supported on this platform")

// Memory represents memory usage in bytes
type Memory struct {
	Total     uint64
	Free      uint64
	Buffers   uint64
	Shared    uint64
	SwapTotal uint64
	SwapFree  uint64
}

// Used returns used memory
func (m *Memory) Used() uint64 {
	if m.Total < m.Free+m.Buffers {
		return 0
	}
	return m.Total - m.Free - m.Buffers
}

// Available returns memory that can be claimed without swapping
func (m *Memory) Available() uint64 {
	if m.Total < m.Free+m.Buffers {
		return m.Total
	}
	return m.Free + m.Buffers
}

// Disk represents file system usage in bytes
type Disk struct {
	Total     uint64
	Free      uint64
	Available uint64
}

// Used returns used space
func (d *Disk) Used() uint64 {
	if d.Total < d.Free {
		return 0
	}
	return d.Total - d.Free
}

// Kernel represents kernel identification
type Kernel struct {
	System   string
	Release  string
	Machine  string
	Hostname string
}

// Load represents host load
type Load struct {
	Uptime    time.Duration
	Averages  [3]float64
	Processes int
}

// Host abstracts platform queries
type Host interface {
	Load() (*Load, error)
	Memory() (*Memory, error)
	Disk(path string) (*Disk, error)
	Kernel() (*Kernel, error)
}
