package network

import (
	"context"
	"errors"
	"fmt"
	"net"

	"golang.org/x/net/proxy"
)

// ErrPrivateAddress is returned when a destination resolves to a local network address
var ErrPrivateAddress = errors.New("private network address not allowed")

// Dialer dials network connections
type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type DialerFunc func(context.Context, string, string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network string, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}

// NewDialer returns a dialer honoring ALL_PROXY/NO_PROXY that refuses
// loopback, private and link-local destinations unless allowPrivate is set.
func NewDialer(allowPrivate bool) Dialer {
	direct := &net.Dialer{}
	forward := proxy.FromEnvironmentUsing(direct)
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, err
		}
		var allowed []net.IPAddr
		for _, ip := range ips {
			if !allowPrivate && IsPrivate(ip.IP) {
				continue
			}
			allowed = append(allowed, ip)
		}
		if len(allowed) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrPrivateAddress, host)
		}
		if forward != proxy.Dialer(direct) {
			if contextDialer, ok := forward.(proxy.ContextDialer); ok {
				return contextDialer.DialContext(ctx, network, addr)
			}
			return forward.Dial(network, addr)
		}
		// dial the checked address so that a second lookup cannot change the destination
		return direct.DialContext(ctx, network, net.JoinHostPort(allowed[0].IP.String(), port))
	})
}

// IsPrivate returns true for loopback, private, link-local and unspecified addresses
func IsPrivate(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified() || ip.IsInterfaceLocalMulticast()
}
