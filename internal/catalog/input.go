package catalog

import (
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var inputRules = []Rule{
	{
		Name:        "Mouse Acceleration",
		Description: "Disable for precise aiming in FPS games.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hkcu(keyMouse, "MouseSpeed"), 1)
			return Outcome{Value: enabledIf(n != 0), Status: pick(n == 0, types.StatusWarning)}
		},
	},
	{
		Name:        "Enhance Pointer Precision",
		Description: "Windows mouse acceleration. Disable for gaming.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hkcu(keyMouse, "MouseSpeed"), 1)
			return Outcome{Value: enabledIf(n != 0), Status: pick(n == 0, types.StatusWarning)}
		},
	},
	infoDWORD("Mouse Speed", "Pointer speed slider position. 10/20 maps input 1:1.",
		hkcu(keyMouse, "MouseSensitivity"), 10, "%d/20"),
	infoText("Mouse Acceleration Threshold 1", "First acceleration threshold. 0 gives a linear response.",
		hkcu(keyMouse, "MouseThreshold1"), "0"),
	infoText("Mouse Acceleration Threshold 2", "Second acceleration threshold. 0 gives a linear response.",
		hkcu(keyMouse, "MouseThreshold2"), "0"),
	infoText("Keyboard Repeat Delay", "Delay before a held key repeats. 0 is shortest (250ms).",
		hkcu(keyKeyboard, "KeyboardDelay"), "1"),
	infoText("Keyboard Repeat Rate", "Key repeat speed. 31 is fastest.",
		hkcu(keyKeyboard, "KeyboardSpeed"), "31"),
	infoDWORD("Mouse Data Queue Size", "Mouse class driver input buffer size.",
		hklm(`SYSTEM\CurrentControlSet\Services\mouclass\Parameters`, "MouseDataQueueSize"), 100, "%d"),
	infoDWORD("Keyboard Data Queue Size", "Keyboard class driver input buffer size.",
		hklm(`SYSTEM\CurrentControlSet\Services\kbdclass\Parameters`, "KeyboardDataQueueSize"), 100, "%d"),
	serviceRule("HID Service", "hidserv", probe.StateRunning, types.StatusInfo,
		"Handles hot keys on keyboards, remotes and other HID devices."),
	serviceRule("Tablet Input Service", "TabletInputService", probe.StateStopped, types.StatusInfo,
		"Touch keyboard and handwriting panel. Unneeded without touch or pen input."),
}
