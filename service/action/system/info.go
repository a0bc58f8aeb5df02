package system

import (
	"context"
	"fmt"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/viant/pixelterm/internal/clock"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

const (
	dateLayout = "Monday, January 02, 2006 03:04:05 PM"
	timeLayout = "15:04:05"
	// psQuery lists the top 10 processes by CPU
	psQuery = "ps -eo pid,pcpu,pmem,comm --sort=-pcpu | head -n 11"
)

func (s *Service) sysinfo(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	var lines []string
	add := func(label, value string) {
		lines = append(lines, fmt.Sprintf("%-18s %s", label+":", value))
	}
	add("Application", s.appName+" "+s.appVersion)
	if kernel, err := s.host.Kernel(); err != nil {
		add("System", unavailable("kernel information", err))
	} else {
		add("System", strings.TrimSpace(kernel.System+" "+kernel.Release))
		add("Hostname", kernel.Hostname)
	}
	add("Architecture", runtime.GOARCH)
	add("CPUs", fmt.Sprintf("%d", runtime.NumCPU()))
	if memory, err := s.host.Memory(); err != nil {
		add("Memory", unavailable("Memory information", err))
	} else {
		add("Memory", humanBytes(memory.Total)+" total, "+humanBytes(memory.Available())+" available")
	}
	if disk, err := s.host.Disk(term.Root()); err != nil {
		add("Disk", unavailable("Disk usage", err))
	} else {
		add("Disk", humanBytes(disk.Total)+" total, "+humanBytes(disk.Available)+" free")
	}
	add("Runtime", runtime.Version())
	add("User", s.userName(term))
	add("Current Directory", sandbox.Virtual(term.Root(), term.CurrentDir()))
	add("Session Uptime", formatDuration(clock.Now().Sub(term.StartedAt())))
	return response.Text(strings.Join(lines, "\n"))
}

func (s *Service) uptime(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	var lines []string
	load, err := s.host.Load()
	if err != nil {
		lines = append(lines, unavailable("System uptime", err))
	} else {
		lines = append(lines, fmt.Sprintf("System up %s, %d processes, load average: %.2f, %.2f, %.2f",
			formatDuration(load.Uptime), load.Processes, load.Averages[0], load.Averages[1], load.Averages[2]))
	}
	lines = append(lines, "Session up "+formatDuration(clock.Now().Sub(term.StartedAt())))
	return response.Text(strings.Join(lines, "\n"))
}

func (s *Service) processes(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	stdout, status, err := s.runner.Run(ctx, psQuery)
	if err == nil && status != 0 {
		err = fmt.Errorf("exit status %d", status)
	}
	if err != nil {
		return response.Text(unavailable("Process list", err))
	}
	stdout = strings.TrimRight(stdout, "\n")
	if strings.TrimSpace(stdout) == "" {
		return response.Text("No processes found")
	}
	return response.Text(stdout)
}

func (s *Service) diskFree(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	disk, err := s.host.Disk(term.Root())
	if err != nil {
		return response.Text(unavailable("Disk usage", err))
	}
	percent := 0.0
	if disk.Total > 0 {
		percent = float64(disk.Used()) / float64(disk.Total) * 100
	}
	lines := []string{
		fmt.Sprintf("%-10s %10s %10s %10s %6s", "Filesystem", "Size", "Used", "Avail", "Use%"),
		fmt.Sprintf("%-10s %10s %10s %10s %5.0f%%", "/", humanBytes(disk.Total), humanBytes(disk.Used()), humanBytes(disk.Available), percent),
	}
	return response.Text(strings.Join(lines, "\n"))
}

func (s *Service) memoryFree(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	memory, err := s.host.Memory()
	if err != nil {
		return response.Text(unavailable("Memory information", err))
	}
	lines := []string{
		fmt.Sprintf("%-6s %10s %10s %10s %10s", "", "total", "used", "free", "buffers"),
		fmt.Sprintf("%-6s %10s %10s %10s %10s", "Mem:", humanBytes(memory.Total), humanBytes(memory.Used()), humanBytes(memory.Free), humanBytes(memory.Buffers)),
		fmt.Sprintf("%-6s %10s %10s %10s", "Swap:", humanBytes(memory.SwapTotal), humanBytes(memory.SwapTotal-min(memory.SwapFree, memory.SwapTotal)), humanBytes(memory.SwapFree)),
	}
	return response.Text(strings.Join(lines, "\n"))
}

func (s *Service) whoami(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Text(s.userName(term))
}

func (s *Service) userName(term types.Terminal) string {
	if name := term.User(); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	return "user"
}

func (s *Service) date(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Text(clock.Now().Format(dateLayout))
}

func (s *Service) time(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Text(clock.Now().Format(timeLayout))
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second
	if days > 0 {
		return fmt.Sprintf("%d days, %02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

var byteUnits = []string{"B", "KB", "MB", "GB"}

func humanBytes(size uint64) string {
	value := float64(size)
	for _, unit := range byteUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
