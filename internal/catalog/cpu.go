package catalog

import (
	"fmt"
	"strings"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

// highPerformanceScheme is the GUID prefix of the built-in High Performance
// power plan.
const highPerformanceScheme = "8c5e7fda"

var cpuRules = []Rule{
	infoText("Processor", "Processor model reported by the firmware.",
		probe.WMI("Win32_Processor", "Name"), "Unknown"),
	infoText("Physical Cores", "Number of physical cores on the first processor package.",
		probe.WMI("Win32_Processor", "NumberOfCores"), "Unknown"),
	infoText("Logical Processors", "Number of hardware threads on the first processor package.",
		probe.WMI("Win32_Processor", "NumberOfLogicalProcessors"), "Unknown"),
	{
		Name:        "Max Clock Speed",
		Description: "Rated maximum clock speed.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, probe.WMI("Win32_Processor", "MaxClockSpeed"))
			if !ok {
				return Outcome{Value: "Unknown", Status: types.StatusInfo}
			}
			return Outcome{Value: fmt.Sprintf("%d MHz", n), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Active Power Plan",
		Description: "High Performance power plan provides best performance.",
		Eval: func(p probe.Prober) Outcome {
			guid := probe.Str(p, hklm(keyPower+`\User\PowerSchemes`, "ActivePowerScheme"), "")
			if strings.Contains(strings.ToLower(guid), highPerformanceScheme) {
				return Outcome{Value: "High Performance", Status: types.StatusOptimal}
			}
			return Outcome{Value: "Balanced/Other", Status: types.StatusWarning}
		},
	},
	configuredRule("C-States", "CPU idle states. Disabling can reduce latency but increase power usage.",
		hklm(`SYSTEM\CurrentControlSet\Control\Processor`, "Capabilities")),
	{
		Name:        "Core Parking",
		Description: "Disabling core parking keeps all CPU cores active.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyProcPower+`\0cc5b647-c1df-4637-891a-dec35c318583`, "ValueMax"))
			disabled := is(n, ok, 0)
			return Outcome{Value: enabledIf(!disabled), Status: pick(disabled, types.StatusWarning)}
		},
	},
	{
		Name:        "Processor Boost Mode",
		Description: "CPU turbo boost for higher performance.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyProcPower+`\be337238-0d82-4146-a960-4f3749d470c7`, "ValueMax"))
			on := !ok || n == 1
			return Outcome{Value: enabledIf(on), Status: pick(on, types.StatusWarning)}
		},
	},
	{
		Name:        "Processor Throttle",
		Description: "CPU frequency limits. 100% is optimal for performance.",
		Eval: func(p probe.Prober) Outcome {
			key := keyProcPower + `\893dee8e-2bef-41e0-89c6-b55d0929964c`
			lo := probe.DWORD(p, hklm(key, "ValueMin"), 5)
			hi := probe.DWORD(p, hklm(key, "ValueMax"), 100)
			return Outcome{
				Value:  fmt.Sprintf("Min: %d%%, Max: %d%%", lo, hi),
				Status: pick(lo >= 100 && hi >= 100, types.StatusWarning),
			}
		},
	},
	toggleDWORD("VBS (Virtualization-Based Security)", "VBS can reduce performance. Disable if not needed.",
		hklm(keyDeviceGuard, "EnableVirtualizationBasedSecurity"), 1, false, types.StatusWarning),
	toggleDWORD("HVCI (Memory Integrity)", "HVCI adds CPU overhead. Disable for better performance.",
		hklm(keyDeviceGuard+`\Scenarios\HypervisorEnforcedCodeIntegrity`, "Enabled"), 1, false, types.StatusWarning),
	{
		Name:        "CPU Vulnerability Mitigations",
		Description: "Spectre/Meltdown mitigations. Can be disabled for performance.",
		Eval: func(p probe.Prober) Outcome {
			if probe.Present(p, hklm(keyMemory, "FeatureSettingsOverride")) {
				return Outcome{Value: "Modified", Status: types.StatusInfo}
			}
			return Outcome{Value: "Default", Status: types.StatusInfo}
		},
	},
	{
		Name:        "Heterogeneous Scheduler",
		Description: "Hybrid architecture scheduler policy (performance and efficiency cores).",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyKernel, "HeteroSchedulerPolicy"))
			if !ok {
				return Outcome{Value: "System Default", Status: types.StatusInfo}
			}
			return Outcome{Value: fmt.Sprintf("Policy %d", n), Status: types.StatusInfo}
		},
	},
	infoDWORD("Processor Performance Boost Policy", "Boost policy written by the active power scheme.",
		hklm(keyProcPower+`\be337238-0d82-4146-a960-4f3749d470c7`, "DefaultPowerSchemeValues"), 0, "%d"),
	infoDWORD("Core Parking Min Cores", "Minimum percentage of cores to keep unparked.",
		hklm(keyProcPower+`\0cc5b647-c1df-4637-891a-dec35c318583`, "ValueMin"), 0, "%d%%"),
	infoDWORD("Performance Increase Threshold", "CPU load threshold to increase performance state.",
		hklm(keyProcPower+`\06cadf0e-64ed-448a-8927-ce7bf90eb35d`, "ValueMax"), 60, "%d%%"),
	infoDWORD("Performance Decrease Threshold", "CPU load threshold to decrease performance state.",
		hklm(keyProcPower+`\12a0ab44-fe28-4fa9-b3bd-4b64f44960a6`, "ValueMax"), 40, "%d%%"),
}
