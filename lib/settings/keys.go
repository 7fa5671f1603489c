package settings

// Viper configuration keys.
const (
	Title = "title"
	IP    = "ip"
	Port  = "port"

	DefaultStyleFontFamily = "defaultStyle.fontFamily"
	DefaultStylePointSize  = "defaultStyle.pointSize"
	KnownFontFamilies      = "defaultStyle.knownFamilies"

	SpeechVoice = "speech.voice"

	DBType             = "dbType"
	DBSettingsFilename = "dbSettings.filename"
	DBSettingsURL      = "dbSettings.url"
)

const (
	SQLITE   = "sqlite"
	POSTGRES = "postgres"
	MEMORY   = "memory"
)
