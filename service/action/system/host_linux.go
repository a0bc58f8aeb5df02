//go:build linux

package system

import (
	"time"

	"golang.org/x/sys/unix"
)

// loadScale converts sysinfo fixed point load averages
const loadScale = 1 << 16

type host struct{}

func newHost() Host {
	return &host{}
}

func (h *host) sysinfo() (*unix.Sysinfo_t, error) {
	info := &unix.Sysinfo_t{}
	if err := unix.Sysinfo(info); err != nil {
		return nil, err
	}
	return info, nil
}

func (h *host) Load() (*Load, error) {
	info, err := h.sysinfo()
	if err != nil {
		return nil, err
	}
	ret := &Load{
		Uptime:    time.Duration(info.Uptime) * time.Second,
		Processes: int(info.Procs),
	}
	for i := range ret.Averages {
		ret.Averages[i] = float64(info.Loads[i]) / loadScale
	}
	return ret, nil
}

func (h *host) Memory() (*Memory, error) {
	info, err := h.sysinfo()
	if err != nil {
		return nil, err
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return &Memory{
		Total:     uint64(info.Totalram) * unit,
		Free:      uint64(info.Freeram) * unit,
		Buffers:   uint64(info.Bufferram) * unit,
		Shared:    uint64(info.Sharedram) * unit,
		SwapTotal: uint64(info.Totalswap) * unit,
		SwapFree:  uint64(info.Freeswap) * unit,
	}, nil
}

func (h *host) Disk(path string) (*Disk, error) {
	stat := &unix.Statfs_t{}
	if err := unix.Statfs(path, stat); err != nil {
		return nil, err
	}
	blockSize := uint64(stat.Bsize)
	return &Disk{
		Total:     stat.Blocks * blockSize,
		Free:      stat.Bfree * blockSize,
		Available: stat.Bavail * blockSize,
	}, nil
}

func (h *host) Kernel() (*Kernel, error) {
	name := &unix.Utsname{}
	if err := unix.Uname(name); err != nil {
		return nil, err
	}
	return &Kernel{
		System:   unix.ByteSliceToString(name.Sysname[:]),
		Release:  unix.ByteSliceToString(name.Release[:]),
		Machine:  unix.ByteSliceToString(name.Machine[:]),
		Hostname: unix.ByteSliceToString(name.Nodename[:]),
	}, nil
}
