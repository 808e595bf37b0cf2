// Package diskusage reports free space on the volume holding a path, so a
// run can tell how much space removing node_modules gave back.
package diskusage

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Usage is a point-in-time free space reading.
type Usage struct {
	// Path is the path that was queried
	Path string
	// Fstype is the filesystem type reported by the OS
	Fstype string
	// Free is the number of bytes available
	Free uint64
}

// ProbeFunc reads the free space for a path.
type ProbeFunc func(path string) (Usage, error)

// Probe reads the free space of the filesystem containing path.
func Probe(path string) (Usage, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return Usage{}, fmt.Errorf("failed to read disk usage for %s: %w", path, err)
	}
	return Usage{
		Path:   stat.Path,
		Fstype: stat.Fstype,
		Free:   stat.Free,
	}, nil
}

// Reclaimed returns how many bytes became free between two readings. Other
// writers on the same volume can make free space shrink; that reads as zero.
func Reclaimed(before, after Usage) uint64 {
	if after.Free <= before.Free {
		return 0
	}
	return after.Free - before.Free
}
