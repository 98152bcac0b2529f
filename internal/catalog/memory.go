package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var prefetchModes = map[uint64]string{
	0: "Disabled",
	1: "Applications",
	2: "Boot",
	3: "Applications and Boot",
}

var memoryRules = []Rule{
	{
		Name:        "Installed Memory",
		Description: "Total physical memory visible to Windows.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, probe.WMI("Win32_ComputerSystem", "TotalPhysicalMemory"))
			if !ok {
				return Outcome{Value: "Unknown", Status: types.StatusInfo}
			}
			gb := float64(n) / (1 << 30)
			status := types.StatusOptimal
			switch {
			case gb < 8:
				status = types.StatusIssue
			case gb < 16:
				status = types.StatusWarning
			}
			return Outcome{Value: fmt.Sprintf("%.1f GB", gb), Status: status}
		},
	},
	{
		Name:        "Page File",
		Description: "A page file is required for crash dumps and commit headroom.",
		Eval: func(p probe.Prober) Outcome {
			if probe.Present(p, hklm(keyMemory, "PagingFiles")) {
				return Outcome{Value: "Configured", Status: types.StatusOptimal}
			}
			return Outcome{Value: "Not Set", Status: types.StatusWarning}
		},
	},
	{
		Name:        "Prefetch",
		Description: "Prefetcher mode. 3 (applications and boot) is the Windows default.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyMemory+`\PrefetchParameters`, "EnablePrefetcher"), 3)
			label, ok := prefetchModes[n]
			if !ok {
				label = fmt.Sprintf("Mode %d", n)
			}
			return Outcome{Value: label, Status: types.StatusInfo}
		},
	},
	flagDWORD("Large System Cache", "Favours file cache over process working sets. Off is best for desktops.",
		hklm(keyMemory, "LargeSystemCache"), 1),
	flagDWORD("Clear PageFile at Shutdown", "Wipes the page file on shutdown. Slows shutdown considerably.",
		hklm(keyMemory, "ClearPageFileAtShutdown"), 1),
	toggleDWORD("Disable Paging Executive", "Keeps kernel and drivers in RAM instead of paging them out.",
		hklm(keyMemory, "DisablePagingExecutive"), 1, true, types.StatusWarning),
	serviceRule("Superfetch (SysMain)", "SysMain", probe.StateRunning, types.StatusInfo,
		"Preloads frequently used applications into memory."),
	infoDWORD("Second Level Data Cache", "L2 cache size override. 0 lets Windows detect it.",
		hklm(keyMemory, "SecondLevelDataCache"), 0, "%d KB"),
}
