package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var networkRules = []Rule{
	{
		Name:        "Nagle Algorithm",
		Description: "TcpAckFrequency=1 acknowledges every packet, lowering latency for small packets.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyTcpip+`\Interfaces`, "TcpAckFrequency"))
			if is(n, ok, 1) {
				return Outcome{Value: "Disabled (Low Latency)", Status: types.StatusOptimal}
			}
			return Outcome{Value: "Enabled (Default)", Status: types.StatusWarning}
		},
	},
	{
		Name:        "QoS Packet Scheduler Throttling",
		Description: "Bandwidth reserved by the QoS packet scheduler. 0% is optimal.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(`SOFTWARE\Policies\Microsoft\Windows\Psched`, "NonBestEffortLimit"), 20)
			return Outcome{Value: fmt.Sprintf("%d%%", n), Status: pick(n == 0, types.StatusWarning)}
		},
	},
	{
		Name:        "TCP Auto-Tuning",
		Description: "Receive window auto-tuning. Disabling it caps throughput.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyTcpip, "EnableWsd"))
			if ok && n == 0 {
				return Outcome{Value: "Restricted", Status: types.StatusWarning}
			}
			return Outcome{Value: "Normal", Status: types.StatusOptimal}
		},
	},
	toggleDWORD("ECN Capability", "Explicit Congestion Notification.",
		hklm(keyTcpip, "EnableECNCapability"), 1, true, types.StatusInfo),
	infoDWORD("Default TTL", "Initial time-to-live of outgoing packets.",
		hklm(keyTcpip, "DefaultTTL"), 128, "%d"),
	serviceRule("Network Location Awareness", "NlaSvc", probe.StateRunning, types.StatusWarning,
		"Required to detect network profiles and connectivity."),
	serviceRule("DNS Client", "Dnscache", probe.StateRunning, types.StatusWarning,
		"Caches DNS lookups."),
	{
		Name:        "Network Adapters",
		Description: "Number of physical network adapters.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, probe.WMICount("Win32_NetworkAdapterConfiguration"), 0)
			if n == 0 {
				return Outcome{Value: "None Detected", Status: types.StatusInfo}
			}
			return Outcome{Value: fmt.Sprintf("%d", n), Status: types.StatusInfo}
		},
	},
}
