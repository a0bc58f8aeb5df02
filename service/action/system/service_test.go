package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pixelterm/internal/clock"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/runtime/session"
)

type fakeRunner struct {
	stdout  string
	status  int
	err     error
	command string
}

func (r *fakeRunner) Run(ctx context.Context, command string) (string, int, error) {
	r.command = command
	return r.stdout, r.status, r.err
}

type fakeHost struct {
	err error
}

func (h *fakeHost) Load() (*Load, error) {
	if h.err != nil {
		return nil, h.err
	}
	return &Load{Uptime: 26*time.Hour + 3*time.Minute + 4*time.Second, Averages: [3]float64{0.5, 0.25, 0.125}, Processes: 42}, nil
}

func (h *fakeHost) Memory() (*Memory, error) {
	if h.err != nil {
		return nil, h.err
	}
	return &Memory{Total: 4 << 30, Free: 1 << 30, Buffers: 1 << 30, SwapTotal: 2 << 30, SwapFree: 2 << 30}, nil
}

func (h *fakeHost) Disk(path string) (*Disk, error) {
	if h.err != nil {
		return nil, h.err
	}
	return &Disk{Total: 100 << 30, Free: 75 << 30, Available: 70 << 30}, nil
}

func (h *fakeHost) Kernel() (*Kernel, error) {
	if h.err != nil {
		return nil, h.err
	}
	return &Kernel{System: "Linux", Release: "6.1.0", Machine: "x86_64", Hostname: "pixel"}, nil
}

func execute(t *testing.T, srv *Service, term types.Terminal, verb string) *response.Response {
	method, err := srv.Method(verb)
	require.NoError(t, err)
	return method(context.Background(), term, &types.Command{Verb: verb, Raw: verb})
}

func TestService_Method(t *testing.T) {
	fixed := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	clock.NowFunc = func() time.Time { return fixed }
	defer func() { clock.NowFunc = time.Now }()

	term, err := session.New(t.TempDir(), session.WithUser("alice"))
	require.NoError(t, err)

	testCases := []struct {
		description string
		verb        string
		host        Host
		runner      *fakeRunner
		expect      string
		contains    []string
	}{
		{description: "date", verb: "date", expect: "Saturday, March 09, 2024 02:05:06 PM"},
		{description: "time", verb: "time", expect: "14:05:06"},
		{description: "whoami", verb: "whoami", expect: "alice"},
		{description: "sysinfo", verb: "sysinfo", contains: []string{"Pixel Pusher OS 2.0.0", "Linux 6.1.0", "alice", "Current Directory: /",
			"Memory:            4.0 GB total, 2.0 GB available", "Disk:              100.0 GB total, 70.0 GB free"}},
		{description: "sysinfo degraded", verb: "sysinfo", host: &fakeHost{err: errors.New("boom")}, contains: []string{"Pixel Pusher OS 2.0.0",
			"Memory information unavailable: boom", "Disk usage unavailable: boom", "Current Directory: /"}},
		{description: "uptime", verb: "uptime", contains: []string{"System up 1 days, 02:03:04", "42 processes", "0.50, 0.25, 0.12"}},
		{description: "df", verb: "df", contains: []string{"100.0 GB", "25.0 GB", "70.0 GB", "25%"}},
		{description: "free", verb: "free", contains: []string{"Mem:", "4.0 GB", "2.0 GB", "Swap:"}},
		{description: "df degraded", verb: "df", host: &fakeHost{err: errors.New("boom")}, expect: "Disk usage unavailable: boom"},
		{description: "free degraded", verb: "free", host: &fakeHost{err: errors.New("boom")}, expect: "Memory information unavailable: boom"},
		{description: "uptime degraded", verb: "uptime", host: &fakeHost{err: errors.New("boom")}, contains: []string{"System uptime unavailable: boom", "Session up"}},
		{description: "ps", verb: "ps", runner: &fakeRunner{stdout: "  PID %CPU %MEM COMMAND\n    1  0.0  0.1 init\n"}, expect: "  PID %CPU %MEM COMMAND\n    1  0.0  0.1 init"},
		{description: "ps blank", verb: "ps", runner: &fakeRunner{stdout: "  \n"}, expect: "No processes found"},
		{description: "ps failed", verb: "ps", runner: &fakeRunner{status: 1}, expect: "Process list unavailable: exit status 1"},
		{description: "ps error", verb: "ps", runner: &fakeRunner{err: errors.New("no shell")}, expect: "Process list unavailable: no shell"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			host := testCase.host
			if host == nil {
				host = &fakeHost{}
			}
			runner := testCase.runner
			if runner == nil {
				runner = &fakeRunner{}
			}
			srv := New(WithHost(host), WithRunner(runner))
			actual := execute(t, srv, term, testCase.verb)
			assert.Equal(t, response.TypeText, actual.Type, actual.Text)
			if testCase.expect != "" {
				assert.Equal(t, testCase.expect, actual.Text)
			}
			for _, fragment := range testCase.contains {
				assert.Contains(t, actual.Text, fragment)
			}
		})
	}
}

func TestService_PsQuery(t *testing.T) {
	term, err := session.New(t.TempDir())
	require.NoError(t, err)
	runner := &fakeRunner{stdout: "PID"}
	execute(t, New(WithHost(&fakeHost{}), WithRunner(runner)), term, "ps")
	assert.Equal(t, psQuery, runner.command)
}

func TestHost(t *testing.T) {
	host := newHost()
	kernel, err := host.Kernel()
	require.NoError(t, err)
	assert.NotEmpty(t, kernel.System)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:05", formatDuration(5*time.Second))
	assert.Equal(t, "01:01:01", formatDuration(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "2 days, 00:00:00", formatDuration(48*time.Hour))
	assert.Equal(t, "00:00:00", formatDuration(-time.Second))
}
