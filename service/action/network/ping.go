package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/parser"
)

const defaultPort = "80"

// Probe represents a single TCP connect attempt
type Probe struct {
	Latency time.Duration
	Err     error
}

func (s *Service) ping(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	target := parser.Unquote(strings.TrimSpace(cmd.Argument))
	if target == "" {
		return response.Error(response.KindInvalidArgument, "Usage: ping <host[:port]>")
	}
	addr, err := normalizeAddr(target)
	if err != nil {
		return response.Errorf(response.KindInvalidArgument, "Invalid address: %v", err)
	}
	var lines = []string{fmt.Sprintf("PING %v (tcp)", addr)}
	var probes []*Probe
	for i := 0; i < s.probes; i++ {
		if i > 0 && s.probeInterval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.probeInterval):
			}
		}
		if ctx.Err() != nil {
			break
		}
		probe := s.probe(ctx, addr)
		probes = append(probes, probe)
		if probe.Err != nil {
			if len(probes) == 1 && errors.Is(probe.Err, ErrPrivateAddress) {
				return networkFailure("ping", target, probe.Err)
			}
			lines = append(lines, fmt.Sprintf("probe %d: failed: %v", i+1, probe.Err))
			continue
		}
		lines = append(lines, fmt.Sprintf("probe %d: connected to %v time=%.1f ms", i+1, addr, milliseconds(probe.Latency)))
	}
	lines = append(lines, summary(addr, probes)...)
	return response.Text(strings.Join(lines, "\n"))
}

func (s *Service) probe(ctx context.Context, addr string) *Probe {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	started := time.Now()
	conn, err := s.dialer.DialContext(probeCtx, "tcp", addr)
	if err != nil {
		return &Probe{Err: unwrapOpError(err)}
	}
	latency := time.Since(started)
	_ = conn.Close()
	return &Probe{Latency: latency}
}

func summary(addr string, probes []*Probe) []string {
	succeeded := 0
	var total, lowest, highest time.Duration
	for _, probe := range probes {
		if probe.Err != nil {
			continue
		}
		if succeeded == 0 || probe.Latency < lowest {
			lowest = probe.Latency
		}
		if probe.Latency > highest {
			highest = probe.Latency
		}
		total += probe.Latency
		succeeded++
	}
	loss := 100.0
	if len(probes) > 0 {
		loss = float64(len(probes)-succeeded) / float64(len(probes)) * 100
	}
	ret := []string{
		fmt.Sprintf("--- %v ping statistics ---", addr),
		fmt.Sprintf("%d probes sent, %d successful, %.0f%% loss", len(probes), succeeded, loss),
	}
	if succeeded > 0 {
		ret = append(ret, fmt.Sprintf("min/avg/max = %.1f/%.1f/%.1f ms", milliseconds(lowest), milliseconds(total/time.Duration(succeeded)), milliseconds(highest)))
	}
	return ret
}

// normalizeAddr appends the default port when missing
func normalizeAddr(target string) (string, error) {
	if strings.Contains(target, "://") {
		return "", fmt.Errorf("expected host[:port], got %v", target)
	}
	host, port, err := net.SplitHostPort(target)
	if err != nil {
		host, port = strings.Trim(target, "[]"), defaultPort
	}
	if host == "" || strings.ContainsAny(host, " /") {
		return "", fmt.Errorf("invalid host: %v", target)
	}
	return net.JoinHostPort(host, port), nil
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func unwrapOpError(err error) error {
	if opErr, ok := err.(*net.OpError); ok && opErr.Err != nil {
		return opErr.Err
	}
	return err
}
