package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var latencyRules = []Rule{
	{
		Name:        "HPET (High Precision Event Timer)",
		Description: "HPET can add latency. Disabled is better for gaming/real-time.",
		Eval: func(p probe.Prober) Outcome {
			on := probe.Present(p, hklm(`SYSTEM\CurrentControlSet\Control\TimeProviders\TimerDevice`, "TimerDevice"))
			return Outcome{Value: enabledIf(on), Status: pick(!on, types.StatusWarning)}
		},
	},
	{
		Name:        "Dynamic Tick",
		Description: "Dynamic tick can increase latency. Disable for lower latency.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyKernel, "DisableDynamicTick"))
			disabled := is(n, ok, 1)
			return Outcome{Value: enabledIf(!disabled), Status: pick(disabled, types.StatusWarning)}
		},
	},
	{
		Name:        "System Responsiveness (MMCSS)",
		Description: "Controls CPU reservation for multimedia. Lower is better (0-10 optimal).",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyMultimedia, "SystemResponsiveness"), 20)
			status := types.StatusIssue
			switch {
			case n <= 10:
				status = types.StatusOptimal
			case n <= 20:
				status = types.StatusWarning
			}
			return Outcome{Value: fmt.Sprintf("%d%%", n), Status: status}
		},
	},
	{
		Name:        "Network Throttling Index",
		Description: "Network packet processing throttling. 0xFFFFFFFF (disabled) is optimal.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyMultimedia, "NetworkThrottlingIndex"), 10)
			if n == 0xFFFFFFFF {
				return Outcome{Value: "Disabled", Status: types.StatusOptimal}
			}
			return Outcome{Value: fmt.Sprintf("%d", n), Status: types.StatusWarning}
		},
	},
	{
		Name:        "Win32 Priority Separation",
		Description: "Process scheduler priority. 38=long fixed, 26=short variable (gaming).",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(`SYSTEM\CurrentControlSet\Control\PriorityControl`, "Win32PrioritySeparation"), 2)
			return Outcome{Value: fmt.Sprintf("%d", n), Status: pick(n == 38 || n == 26, types.StatusInfo)}
		},
	},
	{
		Name:        "Use Platform Clock",
		Description: "TSC is faster and more accurate than platform clock.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyKernel, "UsePlatformClock"))
			if !ok || n == 0 {
				return Outcome{Value: "Disabled (TSC)", Status: types.StatusOptimal}
			}
			return Outcome{Value: "Enabled", Status: types.StatusWarning}
		},
	},
	{
		Name:        "Interrupt Steering",
		Description: "Allows OS to route device interrupts to specific CPUs.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Control\PnP\Pci`, "DeviceInterruptPolicyEnabled"))
			return Outcome{Value: enabledIf(is(n, ok, 1)), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Distribute Timers",
		Description: "Distributes timer interrupts across CPUs.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyKernel, "DistributeTimers"))
			return Outcome{Value: enabledIf(is(n, ok, 1)), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Latency Sensitivity Hints",
		Description: "Lets the power manager favour responsiveness for latency-sensitive work.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyPower, "LatencySensitivityHint"))
			return Outcome{Value: enabledIf(is(n, ok, 1)), Status: types.StatusInfo}
		},
	},
	infoDWORD("DPC Watchdog Period", "Deferred Procedure Call watchdog timeout.",
		hklm(keyKernel, "DpcWatchdogPeriod"), 0, "%d"),
	infoDWORD("DPC Timeout", "Maximum time for DPC execution.",
		hklm(keyKernel, "DpcTimeout"), 0, "%d"),
	infoDWORD("Idle Scheduling Policy", "Kernel idle scheduling policy.",
		hklm(keyKernel, "IdleSchedulingPolicy"), 0, "%d"),
	infoDWORD("TSC Sync Policy", "Time Stamp Counter synchronization policy.",
		hklm(keyKernel, "GlobalTimerResolutionRequests"), 0, "%d"),
	flagDWORD("Large Page Support", "Large memory pages can reduce TLB misses.",
		hklm(keyMemory, "LargeSystemCache"), 1),
	infoDWORD("Timer Coalescing", "Groups timer expirations to reduce wakeups.",
		hklm(keyKernel, "CoalescingTimerInterval"), 0, "%d"),
	{
		Name:        "MSI Mode (GPU)",
		Description: "Message-Signaled Interrupts reduce latency vs. line-based interrupts.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Services\nvlddmkm`, "RmMsiAllowed"))
			if is(n, ok, 1) {
				return Outcome{Value: "Enabled", Status: types.StatusInfo}
			}
			return Outcome{Value: "Check Required", Status: types.StatusInfo}
		},
	},
	{
		Name:        "GPU Priority (Games)",
		Description: "GPU scheduling priority for games. 8 is optimal.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyGamesTask, "GPU Priority"), 8)
			return Outcome{Value: fmt.Sprintf("%d", n), Status: pick(n >= 8, types.StatusWarning)}
		},
	},
	{
		Name:        "Scheduling Category (Games)",
		Description: "CPU scheduling priority. 'High' is optimal for games.",
		Eval: func(p probe.Prober) Outcome {
			v := probe.Str(p, hklm(keyGamesTask, "Scheduling Category"), "Medium")
			return Outcome{Value: v, Status: pick(v == "High", types.StatusWarning)}
		},
	},
}
