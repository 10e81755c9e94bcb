// Package netcheck reports whether the client currently has a usable
// network path to the server. It is the only connectivity signal the
// sync core consults; the check is synchronous and side-effect-free.
package netcheck

import (
	"net"
	"net/url"
	"time"
)

// Checker answers the single question the sync core asks before it
// attempts any remote work.
type Checker interface {
	IsOnline() bool
}

// Func adapts a plain function to the Checker interface
type Func func() bool

func (f Func) IsOnline() bool { return f() }

// DialChecker probes reachability of the API host with a short TCP dial
type DialChecker struct {
	addr    string
	timeout time.Duration
}

// NewDialChecker builds a checker for the given server URL.
// The port defaults by scheme when the URL does not carry one.
func NewDialChecker(serverURL string) (*DialChecker, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}

	return &DialChecker{
		addr:    net.JoinHostPort(host, port),
		timeout: 3 * time.Second,
	}, nil
}

// IsOnline reports whether the API host accepts a TCP connection
func (c *DialChecker) IsOnline() bool {
	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
