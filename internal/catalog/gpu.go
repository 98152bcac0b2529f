package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var gpuRules = []Rule{
	infoText("GPU Model", "Display adapter reported by the driver.",
		probe.WMI("Win32_VideoController", "Name"), "Unknown"),
	{
		Name:        "GPU VRAM",
		Description: "Dedicated adapter memory. WMI caps this value at 4 GB.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, probe.WMI("Win32_VideoController", "AdapterRAM"))
			if !ok {
				return Outcome{Value: "Unknown", Status: types.StatusInfo}
			}
			return Outcome{Value: bytesToMB(n), Status: types.StatusInfo}
		},
	},
	infoText("Driver Version", "Installed display driver version.",
		probe.WMI("Win32_VideoController", "DriverVersion"), "Unknown"),
	{
		Name:        "HAGS (Hardware Accelerated GPU Scheduling)",
		Description: "HAGS reduces GPU latency on modern GPUs (GTX 1000+, RX 5000+).",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyGraphics, "HwSchMode"))
			on := is(n, ok, 2)
			return Outcome{Value: enabledIf(on), Status: pick(on, types.StatusWarning)}
		},
	},
	infoDWORD("TDR Level", "Timeout Detection and Recovery. 0=disabled (risky), 3=full recovery.",
		hklm(keyGraphics, "TdrLevel"), 3, "%d"),
	{
		Name:        "TDR Delay",
		Description: "Seconds the GPU may be unresponsive before the driver is reset.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyGraphics, "TdrDelay"), 2)
			return Outcome{Value: fmt.Sprintf("%ds", n), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Game DVR",
		Description: "Background recording costs GPU time. Disable if unused.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hkcu(`System\GameConfigStore`, "GameDVR_Enabled"))
			off := is(n, ok, 0)
			return Outcome{Value: enabledIf(!off), Status: pick(off, types.StatusWarning)}
		},
	},
	{
		Name:        "Game Bar",
		Description: "Game Bar capture hooks can add overhead.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hkcu(`SOFTWARE\Microsoft\Windows\CurrentVersion\GameDVR`, "AppCaptureEnabled"))
			off := is(n, ok, 0)
			return Outcome{Value: enabledIf(!off), Status: pick(off, types.StatusWarning)}
		},
	},
	{
		Name:        "MPO (Multi-Plane Overlay)",
		Description: "MPO can cause flicker on some drivers. OverlayTestMode=5 disables it.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(`SOFTWARE\Microsoft\Windows\Dwm`, "OverlayTestMode"))
			return Outcome{Value: enabledIf(!is(n, ok, 5)), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Shader Cache",
		Description: "Shader cache reduces stutter from shader compilation.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyGraphics, "DisableShaderCache"))
			on := !ok || n == 0
			return Outcome{Value: enabledIf(on), Status: pick(on, types.StatusWarning)}
		},
	},
	configuredRule("NVIDIA GPU Scheduling", "Preemption override written for the GPU scheduler.",
		hklm(keyGraphics+`\Scheduler`, "EnablePreemption")),
}
