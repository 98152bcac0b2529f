package types

// Environment kinds reported in SystemInfo.
const (
	EnvVM        = "vm"
	EnvBareMetal = "bare-metal"
)

// SystemInfo describes the machine an audit ran on.
// Populated by the sysinfo package and embedded in every report.
type SystemInfo struct {
	// Hostname is the machine name.
	Hostname string `json:"hostname"`

	// OS is the GOOS value of the running binary.
	OS string `json:"os"`

	// Platform is the product name, e.g. "Microsoft Windows 11 Pro".
	Platform string `json:"platform,omitempty"`

	// PlatformVersion is the platform version string.
	PlatformVersion string `json:"platform_version,omitempty"`

	// KernelVersion is the kernel build.
	KernelVersion string `json:"kernel_version,omitempty"`

	// Arch is the CPU architecture.
	Arch string `json:"arch"`

	// Manufacturer and Model come from the firmware, when available.
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`

	// Environment is bare-metal or vm.
	Environment string `json:"environment,omitempty"`

	// Hypervisor names the virtualization system when Environment is vm.
	Hypervisor string `json:"hypervisor,omitempty"`

	// UptimeSeconds is the time since boot.
	UptimeSeconds uint64 `json:"uptime_seconds,omitempty"`

	// Elevated is true when the audit ran with administrator rights.
	Elevated bool `json:"elevated"`
}
