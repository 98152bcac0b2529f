// Package sysinfo describes the machine being audited.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/ancients-collective/winaudit/internal/types"
)

// Host holds the facts every platform can report.
type Host struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	UptimeSeconds   uint64
}

// Hardware identifies the machine's vendor and model.
type Hardware struct {
	Manufacturer string
	Model        string
}

// Detector abstracts platform-specific system detection.
// Each supported OS provides an implementation via build tags.
type Detector interface {
	// DetectHost returns basic host information.
	DetectHost() (Host, error)

	// DetectHardware returns the system vendor and model.
	DetectHardware() (Hardware, error)

	// DetectVirtualization returns the gopsutil virtualization system and
	// role ("guest" or "host"), both empty when unknown.
	DetectVirtualization() (system, role string, err error)

	// Elevated reports whether the process has administrator rights.
	Elevated() bool
}

// DetectSystemInfo coordinates layered detection using the provided detector.
//   - Layer 1: host detection (must succeed)
//   - Layer 2: hardware detection (warning on failure, continues)
//   - Layer 3: virtualization detection (warning on failure, continues)
//
// Returns the system information, a list of non-fatal warnings, and an
// error only when layer 1 fails.
func DetectSystemInfo(d Detector) (types.SystemInfo, []string, error) {
	info := types.SystemInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	var warnings []string

	h, err := d.DetectHost()
	if err != nil {
		return info, nil, fmt.Errorf("host detection failed: %w", err)
	}
	info.Hostname = h.Hostname
	info.Platform = h.Platform
	info.PlatformVersion = h.PlatformVersion
	info.KernelVersion = h.KernelVersion
	info.UptimeSeconds = h.UptimeSeconds

	hw, err := d.DetectHardware()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("hardware detection failed: %v", err))
	} else {
		info.Manufacturer = hw.Manufacturer
		info.Model = hw.Model
	}

	system, role, err := d.DetectVirtualization()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("virtualization detection failed: %v", err))
	}
	info.Environment, info.Hypervisor = ClassifyEnvironment(system, role, hw)

	info.Elevated = d.Elevated()
	return info, warnings, nil
}

// vendorHypervisors maps substrings of the lowercased manufacturer or
// model to a hypervisor name.
var vendorHypervisors = []struct {
	substr, hv string
}{
	{"vmware", "vmware"},
	{"virtualbox", "virtualbox"},
	{"innotek gmbh", "virtualbox"},
	{"qemu", "kvm"},
	{"kvm", "kvm"},
	{"bochs", "kvm"},
	{"xen", "xen"},
	{"parallels", "parallels"},
	{"amazon ec2", "aws-nitro"},
	{"google compute engine", "gce"},
	{"virtual machine", "hyper-v"},
}

// ClassifyEnvironment decides between a virtual machine and bare metal.
// gopsutil's answer wins when it reports a guest; otherwise the hardware
// vendor and model strings are matched against known hypervisors.
func ClassifyEnvironment(system, role string, hw Hardware) (env, hypervisor string) {
	if role == "guest" && system != "" {
		return types.EnvVM, system
	}
	s := strings.ToLower(hw.Manufacturer + " " + hw.Model)
	for _, v := range vendorHypervisors {
		if strings.Contains(s, v.substr) {
			return types.EnvVM, v.hv
		}
	}
	return types.EnvBareMetal, ""
}

// hostFromGopsutil reads the portable host facts.
func hostFromGopsutil() (Host, error) {
	info, err := host.Info()
	if err != nil {
		return Host{}, err
	}
	return Host{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		UptimeSeconds:   info.Uptime,
	}, nil
}
