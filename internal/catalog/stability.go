package catalog

import (
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

const keyCrashControl = `SYSTEM\CurrentControlSet\Control\CrashControl`

var crashDumpModes = map[uint64]string{
	0: "None",
	1: "Complete",
	2: "Kernel",
	3: "Small",
	7: "Automatic",
}

var stabilityRules = []Rule{
	serviceRule("Windows Update", "wuauserv", probe.StateRunning, types.StatusInfo,
		"Windows Update runs on demand and may be stopped between scans."),
	serviceRule("WMI Service", "Winmgmt", probe.StateRunning, types.StatusIssue,
		"Many management tools and games depend on WMI."),
	serviceRule("Error Reporting", "WerSvc", probe.StateStopped, types.StatusInfo,
		"Collects and uploads crash reports."),
	serviceRule("Time Sync", "W32Time", probe.StateRunning, types.StatusWarning,
		"Keeps the system clock accurate. Skew breaks TLS and online games."),
	toggleDWORD("Auto Reboot on Crash", "Restart automatically after a bug check.",
		hklm(keyCrashControl, "AutoReboot"), 1, true, types.StatusInfo),
	{
		Name:        "Crash Dump Type",
		Description: "Memory dump written on a bug check. Useful for diagnosing BSODs.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyCrashControl, "CrashDumpEnabled"), 7)
			label, ok := crashDumpModes[n]
			if !ok {
				label = "Unknown"
			}
			return Outcome{Value: label, Status: pick(n != 0, types.StatusWarning)}
		},
	},
	infoText("Last Boot", "Time of the last system start.",
		probe.WMI("Win32_OperatingSystem", "LastBootUpTime"), "Unknown"),
	{
		Name:        "Test Signing",
		Description: "Test-signed drivers can load when test signing is on.",
		Eval: func(p probe.Prober) Outcome {
			v := probe.Str(p, hklm(`SYSTEM\CurrentControlSet\Control`, "SystemStartOptions"), "")
			on := containsFold(v, "TESTSIGNING")
			return Outcome{Value: enabledIf(on), Status: pick(!on, types.StatusWarning)}
		},
	},
	{
		Name:        "System Restore",
		Description: "Restore points allow rolling back failed driver or update installs.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SOFTWARE\Policies\Microsoft\Windows NT\SystemRestore`, "DisableSR"))
			off := is(n, ok, 1)
			return Outcome{Value: enabledIf(!off), Status: pick(!off, types.StatusInfo)}
		},
	},
}
