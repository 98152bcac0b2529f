package catalog

import (
	"fmt"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

// classifyTemperature rates a CPU package temperature in degrees Celsius.
func classifyTemperature(c float64) types.CheckStatus {
	switch {
	case c < 70:
		return types.StatusOptimal
	case c < 85:
		return types.StatusWarning
	default:
		return types.StatusIssue
	}
}

var thermalRules = []Rule{
	{
		Name:        "CPU Temperature",
		Description: "ACPI thermal zone temperature. Many systems do not expose it.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, probe.WMIIn(`root\WMI`, "MSAcpi_ThermalZoneTemperature", "CurrentTemperature"))
			if !ok || n == 0 {
				return Outcome{Value: "Not Available", Status: types.StatusInfo}
			}
			c := float64(n)/10 - 273.15
			return Outcome{Value: fmt.Sprintf("%.1f°C", c), Status: classifyTemperature(c)}
		},
	},
	{
		Name:        "Fan Status",
		Description: "Status reported by the first fan device.",
		Eval: func(p probe.Prober) Outcome {
			v, ok := p.Read(probe.WMI("Win32_Fan", "Status"))
			if !ok {
				return Outcome{Value: "Not Reported", Status: types.StatusInfo}
			}
			s := v.String()
			return Outcome{Value: s, Status: pick(s == "OK", types.StatusWarning)}
		},
	},
	{
		Name:        "Temperature Probes",
		Description: "Number of temperature probes exposed through WMI.",
		Eval: func(p probe.Prober) Outcome {
			n := probe.DWORD(p, probe.WMICount("Win32_TemperatureProbe"), 0)
			return Outcome{Value: fmt.Sprintf("%d", n), Status: types.StatusInfo}
		},
	},
	{
		Name:        "Cooling Policy",
		Description: "Active cooling raises fan speed before lowering clocks.",
		Eval: func(p probe.Prober) Outcome {
			n, ok := probe.DWORDOpt(p, hklm(keyProcPower+`\94d3a615-a899-4ac5-ae2b-e4d8f634367f`, "ACSettingIndex"))
			if ok && n == 0 {
				return Outcome{Value: "Passive", Status: types.StatusWarning}
			}
			return Outcome{Value: "Active", Status: types.StatusOptimal}
		},
	},
}
