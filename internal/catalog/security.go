package catalog

import (
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var securityRules = []Rule{
	flagDWORD("VBS (Virtualization-Based Security)", "VBS isolates security functions in a hypervisor partition.",
		hklm(keyDeviceGuard, "EnableVirtualizationBasedSecurity"), 1),
	{
		Name:        "Core Isolation (HVCI)",
		Description: "Hypervisor-enforced code integrity for kernel drivers.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyDeviceGuard+`\Scenarios\HypervisorEnforcedCodeIntegrity`, "Enabled"))
			return Outcome{Value: enabledIf(is(n, ok, 1)), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Credential Guard",
		Description: "Protects LSA secrets with VBS.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Control\Lsa`, "LsaCfgFlags"))
			on := ok && n != 0
			return Outcome{Value: enabledIf(on), Status: types.StatusInfo}
		},
	},
	serviceRule("Microsoft Defender", "WinDefend", probe.StateRunning, types.StatusIssue,
		"Real-time malware protection."),
	serviceRule("Windows Firewall Service", "MpsSvc", probe.StateRunning, types.StatusIssue,
		"Filters inbound and outbound traffic."),
	{
		Name:        "Firewall (Public Profile)",
		Description: "Firewall state on public networks.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Services\SharedAccess\Parameters\FirewallPolicy\PublicProfile`, "EnableFirewall"))
			on := !ok || n == 1
			return Outcome{Value: enabledIf(on), Status: pick(on, types.StatusIssue)}
		},
	},
	{
		Name:        "Secure Boot",
		Description: "Verifies the boot chain against trusted signatures.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Control\SecureBoot\State`, "UEFISecureBootEnabled"))
			if !ok {
				return Outcome{Value: "Unsupported", Status: types.StatusInfo}
			}
			return Outcome{Value: enabledIf(n == 1), Status: pick(n == 1, types.StatusWarning)}
		},
	},
	{
		Name:        "User Account Control",
		Description: "Prompts before elevating to administrator.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\System`, "EnableLUA"))
			on := !ok || n == 1
			return Outcome{Value: enabledIf(on), Status: pick(on, types.StatusIssue)}
		},
	},
	{
		Name:        "SmartScreen",
		Description: "Reputation check for downloaded executables.",
		Eval: func(p probe.Prober) Outcome {
			v := probe.Str(p, hklm(`SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer`, "SmartScreenEnabled"), "Warn")
			off := v == "Off"
			return Outcome{Value: v, Status: pick(!off, types.StatusWarning)}
		},
	},
	{
		Name:        "Remote Desktop",
		Description: "Incoming Remote Desktop connections.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(`SYSTEM\CurrentControlSet\Control\Terminal Server`, "fDenyTSConnections"), 1)
			on := n == 0
			return Outcome{Value: enabledIf(on), Status: pick(!on, types.StatusWarning)}
		},
	},
	{
		Name:        "SMBv1",
		Description: "The legacy SMB1 protocol is insecure and should be off.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Services\LanmanServer\Parameters`, "SMB1"))
			on := is(n, ok, 1)
			return Outcome{Value: enabledIf(on), Status: pick(!on, types.StatusIssue)}
		},
	},
}
