package service

import (
	"fmt"

	gnet "github.com/shirou/gopsutil/net"
)

// Prober answers "is there network connectivity right now?".
// A non-nil error implies a false verdict: enumeration failure is
// treated as offline, never as a distinct loop outcome.
type Prober interface {
	Online() (bool, error)
}

// InterfaceProber reports online when at least one non-loopback
// interface is up and has an assigned address.
type InterfaceProber struct {
	interfaces func() ([]gnet.InterfaceStat, error)
}

func NewInterfaceProber() *InterfaceProber {
	return &InterfaceProber{
		interfaces: func() ([]gnet.InterfaceStat, error) { return gnet.Interfaces() },
	}
}

// Ensure implementation of Prober interface at compile time.
var _ Prober = (*InterfaceProber)(nil)

func (p *InterfaceProber) Online() (bool, error) {
	stats, err := p.interfaces()
	if err != nil {
		return false, fmt.Errorf("enumerate interfaces: %w", err)
	}
	return hasUsableInterface(stats), nil
}

// hasUsableInterface applies the up/non-loopback/addressed classification
// to a set of interface stats.
func hasUsableInterface(stats []gnet.InterfaceStat) bool {
	for _, s := range stats {
		if hasFlag(s.Flags, "up") && !hasFlag(s.Flags, "loopback") && len(s.Addrs) > 0 {
			return true
		}
	}
	return false
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
