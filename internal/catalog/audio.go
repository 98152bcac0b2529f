package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

var duckingModes = map[uint64]string{
	0: "Mute Other Sounds",
	1: "Reduce by 80%",
	2: "Reduce by 50%",
	3: "Do Nothing",
}

var audioRules = []Rule{
	{
		Name:        "Audio Task Priority",
		Description: "MMCSS priority of the Audio task.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hklm(keyAudioTask, "Priority"), 2)
			return Outcome{Value: fmt.Sprintf("%d", n), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Audio Scheduling Category",
		Description: "MMCSS scheduling category of the Audio task.",
		Eval: func(p probe.Prober) Outcome {
			v := probe.Str(p, hklm(keyAudioTask, "Scheduling Category"), "Medium")
			return Outcome{Value: v, Status: pick(v == "High", types.StatusInfo)}
		},
	},
	serviceRule("Windows Audio Service", "Audiosrv", probe.StateRunning, types.StatusIssue,
		"Core audio service. Nothing plays without it."),
	serviceRule("Audio Endpoint Builder", "AudioEndpointBuilder", probe.StateRunning, types.StatusIssue,
		"Manages audio devices for the Windows Audio service."),
	{
		Name:        "Communications Auto-Ducking",
		Description: "What Windows does to other sounds during calls.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, hkcu(`Software\Microsoft\Multimedia\Audio`, "UserDuckingPreference"), 1)
			label, ok := duckingModes[n]
			if !ok {
				label = fmt.Sprintf("Mode %d", n)
			}
			return Outcome{Value: label, Status: pick(n == 3, types.StatusInfo)}
		},
	},
	{
		Name:        "Audio Devices",
		Description: "Number of sound devices known to Windows.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, probe.WMICount("Win32_SoundDevice"), 0)
			if n == 0 {
				return Outcome{Value: "None Detected", Status: types.StatusWarning}
			}
			return Outcome{Value: fmt.Sprintf("%d", n), Status: types.StatusOptimal}
		},
	},
}
