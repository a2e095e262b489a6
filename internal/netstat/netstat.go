// Package netstat samples per-interface byte counters from /proc/net/dev.
package netstat

import (
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/procfs"
)

const DefaultMountPoint = procfs.DefaultMountPoint

var DefaultInterfaces = []string{"eth0", "ppp0"}

type Counters struct {
	RxBytes int64
	TxBytes int64
	At      time.Time
}

type Snapshot map[string]Counters

type Sampler struct {
	mountPoint string
	interfaces []string
	now        func() time.Time
}

// NewSampler reads <mountPoint>/net/dev, mountPoint is usually /proc.
func NewSampler(mountPoint string, interfaces []string) *Sampler {
	if mountPoint == "" {
		mountPoint = DefaultMountPoint
	}

	if len(interfaces) == 0 {
		interfaces = DefaultInterfaces
	}

	return &Sampler{
		mountPoint: mountPoint,
		interfaces: interfaces,
		now:        time.Now,
	}
}

// Sample returns counters of the watched interfaces. A missing or
// unreadable stats file yields an empty snapshot.
func (s *Sampler) Sample() Snapshot {
	snapshot, err := s.read()
	if err != nil {
		return Snapshot{}
	}

	return snapshot
}

func (s *Sampler) read() (Snapshot, error) {
	fs, err := procfs.NewFS(s.mountPoint)
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs: %w", err)
	}

	netDev, err := fs.NetDev()
	if err != nil {
		return nil, fmt.Errorf("failed to read net/dev: %w", err)
	}

	at := s.now()

	snapshot := make(Snapshot, len(s.interfaces))
	for name, line := range netDev {
		if !slices.Contains(s.interfaces, name) {
			continue
		}

		snapshot[name] = Counters{
			RxBytes: int64(line.RxBytes),
			TxBytes: int64(line.TxBytes),
			At:      at,
		}
	}

	return snapshot, nil
}
