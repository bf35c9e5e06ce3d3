package constants

// Application identity
const (
	AppID   = "com.hospitaldesk.app"
	AppName = "Hospital Desk"
)

// File names
const (
	ConfigFileName = "hospital-desk.jsonc"
	DataFileName   = "hospital.json"
	ExecName       = "hospital-desk"
)

// Directory names
const (
	DataDirName = "data"
	LogsDirName = "logs"
)

// Log file names
const (
	MainLogFileName = "hospital-desk.log"
)

// Message codes broadcast between the dialogs of a patient record
const (
	MsgSummarySlider     = "001"
	MsgSummaryStateImage = "002"
)

// Application version
// Can be overridden at build time using -ldflags="-X hospital-desk/internal/constants.AppVersion=..."
var (
	AppVersion = "v0.3.0"
)

// UI Theme settings
const (
	// Theme options: "dark", "light", or "default" (follows system theme)
	AppTheme = "default"
)
