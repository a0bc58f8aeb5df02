//go:build !linux

package system

import (
	"os"
	"runtime"
)

type host struct{}

func newHost() Host {
	return &host{}
}

func (h *host) Load() (*Load, error) {
	return nil, ErrUnsupported
}

func (h *host) Memory() (*Memory, error) {
	return nil, ErrUnsupported
}

func (h *host) Disk(path string) (*Disk, error) {
	return nil, ErrUnsupported
}

func (h *host) Kernel() (*Kernel, error) {
	hostname, _ := os.Hostname()
	return &Kernel{System: runtime.GOOS, Machine: runtime.GOARCH, Hostname: hostname}, nil
}
