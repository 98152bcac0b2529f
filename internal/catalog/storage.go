package catalog

import (
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var storageRules = []Rule{
	{
		Name:        "TRIM Support",
		Description: "TRIM keeps SSD write performance consistent.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyFileSystem, "DisableDeleteNotification"))
			on := !ok || n == 0
			return Outcome{Value: enabledIf(on), Status: pick(on, types.StatusWarning)}
		},
	},
	{
		Name:        "8.3 Filename Creation",
		Description: "Short file name generation slows directory operations on NTFS.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyFileSystem, "NtfsDisable8dot3NameCreation"))
			off := is(n, ok, 1)
			return Outcome{Value: enabledIf(!off), Status: pick(off, types.StatusWarning)}
		},
	},
	{
		Name:        "Last Access Timestamp",
		Description: "Updating last access times adds a write to every read.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyFileSystem, "NtfsDisableLastAccessUpdate"))
			off := is(n, ok, 1)
			return Outcome{Value: enabledIf(!off), Status: pick(off, types.StatusWarning)}
		},
	},
	serviceRule("Windows Search Indexing", "WSearch", probe.StateStopped, types.StatusInfo,
		"The indexer causes background disk activity."),
	{
		Name:        "Storage Sense",
		Description: "Automatic cleanup of temporary files.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hkcu(`SOFTWARE\Microsoft\Windows\CurrentVersion\StorageSense\Parameters\StoragePolicy`, "01"))
			return Outcome{Value: enabledIf(is(n, ok, 1)), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Scheduled Defragmentation",
		Description: "Windows optimizes SSDs with TRIM and HDDs with defragmentation on a schedule.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SOFTWARE\Microsoft\Dfrg\BootOptimizeFunction`, "Enable"))
			if ok && n == 0 {
				return Outcome{Value: "Disabled", Status: types.StatusWarning}
			}
			return Outcome{Value: "Enabled", Status: types.StatusOptimal}
		},
	},
	infoText("System Drive", "Drive letter Windows is installed on.",
		probe.WMI("Win32_OperatingSystem", "SystemDrive"), "Unknown"),
	infoText("Primary Disk", "Model of the first physical disk.",
		probe.WMI("Win32_DiskDrive", "Model"), "Unknown"),
}
