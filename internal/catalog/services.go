package catalog

import (
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

// Services that only cost resources on a typical gaming desktop. Stopped is
// preferred for all of them; running is never more than a warning.
var servicesRules = []Rule{
	serviceRule("Connected User Experiences", "DiagTrack", probe.StateStopped, types.StatusWarning,
		"Telemetry upload service."),
	serviceRule("WAP Push Routing", "dmwappushservice", probe.StateStopped, types.StatusInfo,
		"Routes device management push messages."),
	serviceRule("Diagnostic Policy", "DPS", probe.StateStopped, types.StatusInfo,
		"Problem detection and troubleshooting."),
	serviceRule("Diagnostic Service Host", "WdiServiceHost", probe.StateStopped, types.StatusInfo,
		"Hosts diagnostic modules."),
	serviceRule("Diagnostic System Host", "WdiSystemHost", probe.StateStopped, types.StatusInfo,
		"Hosts system-level diagnostic modules."),
	serviceRule("Xbox Accessory Management", "XboxGipSvc", probe.StateStopped, types.StatusInfo,
		"Xbox controller accessory updates."),
	serviceRule("Xbox Live Auth Manager", "XblAuthManager", probe.StateStopped, types.StatusInfo,
		"Required only for Xbox Live titles."),
	serviceRule("Xbox Live Game Save", "XblGameSave", probe.StateStopped, types.StatusInfo,
		"Cloud saves for Xbox Live titles."),
	serviceRule("Xbox Live Networking", "XboxNetApiSvc", probe.StateStopped, types.StatusInfo,
		"Xbox Live multiplayer networking."),
	serviceRule("Print Spooler", "Spooler", probe.StateStopped, types.StatusInfo,
		"Unneeded without a printer. Historically a frequent attack surface."),
	serviceRule("Fax", "Fax", probe.StateStopped, types.StatusInfo,
		"Fax sending and receiving."),
	serviceRule("Remote Registry", "RemoteRegistry", probe.StateStopped, types.StatusWarning,
		"Lets remote users edit the registry."),
	serviceRule("Retail Demo", "RetailDemo", probe.StateStopped, types.StatusWarning,
		"Store display mode."),
	serviceRule("Downloaded Maps Manager", "MapsBroker", probe.StateStopped, types.StatusInfo,
		"Offline map updates."),
	serviceRule("Geolocation", "lfsvc", probe.StateStopped, types.StatusInfo,
		"Location tracking for apps."),
	serviceRule("Phone Service", "PhoneSvc", probe.StateStopped, types.StatusInfo,
		"Telephony state for apps."),
	serviceRule("Windows Insider", "wisvc", probe.StateStopped, types.StatusInfo,
		"Insider program infrastructure."),
	serviceRule("Touch Keyboard", "TabletInputService", probe.StateStopped, types.StatusInfo,
		"Touch keyboard and handwriting panel."),
	serviceRule("Biometric Service", "WbioSrvc", probe.StateStopped, types.StatusInfo,
		"Fingerprint and face sign-in."),
	serviceRule("Windows Media Player Sharing", "WMPNetworkSvc", probe.StateStopped, types.StatusInfo,
		"Shares media libraries over the network."),
}
