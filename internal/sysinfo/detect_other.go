//go:build !windows

package sysinfo

import (
	"os"

	"github.com/shirou/gopsutil/v4/host"
)

// GenericDetector implements Detector on non-Windows systems, where the
// audit can only replay snapshots.
type GenericDetector struct{}

// NewDetector returns a GenericDetector.
func NewDetector() Detector {
	return &GenericDetector{}
}

// DetectHost returns host information via gopsutil.
func (d *GenericDetector) DetectHost() (Host, error) {
	return hostFromGopsutil()
}

// DetectHardware returns empty Hardware; vendor strings are only read on Windows.
func (d *GenericDetector) DetectHardware() (Hardware, error) {
	return Hardware{}, nil
}

// DetectVirtualization defers to gopsutil.
func (d *GenericDetector) DetectVirtualization() (string, string, error) {
	return host.Virtualization()
}

// Elevated reports whether the process runs as root.
func (d *GenericDetector) Elevated() bool {
	return os.Geteuid() == 0
}
