//go:build windows

package sysinfo

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
)

// WindowsDetector implements Detector using gopsutil, WMI and the process token.
type WindowsDetector struct{}

// NewDetector returns a WindowsDetector.
func NewDetector() Detector {
	return &WindowsDetector{}
}

// DetectHost returns Windows host information via gopsutil.
func (d *WindowsDetector) DetectHost() (Host, error) {
	return hostFromGopsutil()
}

// computerSystemClass is named explicitly: CreateQuery would otherwise
// derive the class from the Go type name.
const computerSystemClass = "Win32_ComputerSystem"

type win32ComputerSystem struct {
	Manufacturer string
	Model        string
}

func hardwareQuery(dst *[]win32ComputerSystem) string {
	return wmi.CreateQuery(dst, "", computerSystemClass)
}

// DetectHardware queries Win32_ComputerSystem.
func (d *WindowsDetector) DetectHardware() (Hardware, error) {
	var dst []win32ComputerSystem
	q := hardwareQuery(&dst)
	if err := wmi.Query(q, &dst); err != nil {
		return Hardware{}, fmt.Errorf("querying Win32_ComputerSystem: %w", err)
	}
	if len(dst) == 0 {
		return Hardware{}, fmt.Errorf("Win32_ComputerSystem returned no rows")
	}
	return Hardware{
		Manufacturer: strings.TrimSpace(dst[0].Manufacturer),
		Model:        strings.TrimSpace(dst[0].Model),
	}, nil
}

// DetectVirtualization defers to gopsutil.
func (d *WindowsDetector) DetectVirtualization() (string, string, error) {
	return host.Virtualization()
}

// Elevated reports whether the process token is elevated.
func (d *WindowsDetector) Elevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
