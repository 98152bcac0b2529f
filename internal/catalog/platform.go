package catalog

import (
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var firmwareTypes = map[uint64]string{
	1: "BIOS",
	2: "UEFI",
}

var platformRules = []Rule{
	infoText("Windows Edition", "Product name of the installed Windows.",
		hklm(keyCurrentVer, "ProductName"), "Unknown"),
	infoText("Build", "Current OS build number.",
		hklm(keyCurrentVer, "CurrentBuild"), "Unknown"),
	infoText("Edition ID", "Internal edition identifier.",
		hklm(keyCurrentVer, "EditionID"), "Unknown"),
	infoText("Version", "Feature update version.",
		hklm(keyCurrentVer, "DisplayVersion"), "Unknown"),
	infoText("Architecture", "Operating system architecture.",
		probe.WMI("Win32_OperatingSystem", "OSArchitecture"), "Unknown"),
	infoText("Manufacturer", "System manufacturer.",
		probe.WMI("Win32_ComputerSystem", "Manufacturer"), "Unknown"),
	infoText("Model", "System model.",
		probe.WMI("Win32_ComputerSystem", "Model"), "Unknown"),
	{
		Name:        "Firmware",
		Description: "Boot firmware type. UEFI is required for Secure Boot.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SYSTEM\CurrentControlSet\Control`, "PEFirmwareType"))
			label, known := firmwareTypes[n]
			if !ok || !known {
				return Outcome{Value: "Unknown", Status: types.StatusInfo}
			}
			return Outcome{Value: label, Status: pick(n == 2, types.StatusWarning)}
		},
	},
	{
		Name:        "Hyper-V",
		Description: "A running hypervisor adds a small latency cost to every VM exit.",
		Eval: func(p probe.Prober) Outcome {
			v := probe.Str(p, probe.WMI("Win32_ComputerSystem", "HypervisorPresent"), "")
			on := v == "true" || v == "True" || v == "1"
			return Outcome{Value: enabledIf(on), Status: types.StatusInfo}
		},
	},
	serviceRule("WSL", "LxssManager", probe.StateRunning, types.StatusInfo,
		"Windows Subsystem for Linux manager."),
}
