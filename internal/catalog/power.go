package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var powerRules = []Rule{
	{
		Name:        "Fast Startup (Hiberboot)",
		Description: "Hybrid shutdown. Can leave drivers in a stale state after updates.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Control\Session Manager\Power`, "HiberbootEnabled"))
			return Outcome{Value: enabledIf(is(n, ok, 1)), Status: types.StatusInfo}
		},
	},
	toggleDWORD("Hibernation", "Hibernation reserves disk space equal to a share of RAM.",
		hklm(keyPower, "HibernateEnabled"), 1, false, types.StatusInfo),
	{
		Name:        "USB Selective Suspend",
		Description: "Powers down idle USB devices. Can cause input device dropouts.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Services\USB`, "DisableSelectiveSuspend"))
			off := is(n, ok, 1)
			return Outcome{Value: enabledIf(!off), Status: pick(off, types.StatusWarning)}
		},
	},
	{
		Name:        "PCIe Link State Power Management",
		Description: "ASPM saves power at the cost of link wake-up latency.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyPower+`\PowerSettings\501a4d13-42af-4429-9fd1-a8218c268e20\ee12f906-d277-404b-b6da-e5fa1a576df5`, "ACSettingIndex"), 0)
			labels := []string{"Off", "Moderate", "Maximum"}
			label := "Unknown"
			if n < uint64(len(labels)) {
				label = labels[n]
			}
			return Outcome{Value: label, Status: pick(n == 0, types.StatusWarning)}
		},
	},
	{
		Name:        "Power Throttling",
		Description: "Background process throttling on hybrid CPUs.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyPower+`\PowerThrottling`, "PowerThrottlingOff"))
			off := is(n, ok, 1)
			return Outcome{Value: enabledIf(!off), Status: pick(off, types.StatusInfo)}
		},
	},
	infoText("Active Power Plan", "GUID of the active power scheme.",
		hklm(keyPower+`\User\PowerSchemes`, "ActivePowerScheme"), "Unknown"),
	{
		Name:        "Battery",
		Description: "Laptops on battery are capped by the battery power plan.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, probe.WMICount("Win32_Battery"), 0)
			if n == 0 {
				return Outcome{Value: "None (Desktop)", Status: types.StatusInfo}
			}
			return Outcome{Value: fmt.Sprintf("%d Present", n), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Modern Standby",
		Description: "S0 low power idle replaces classic S3 sleep.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyPower, "PlatformAoAcOverride"))
			if ok && n == 0 {
				return Outcome{Value: "Disabled", Status: types.StatusInfo}
			}
			return Outcome{Value: "Platform Default", Status: types.StatusInfo}
		},
	},
}
