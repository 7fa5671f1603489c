package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Settings struct {
	Title             string
	IP                string
	Port              string
	DefaultFontFamily string
	DefaultPointSize  float64
	KnownFontFamilies []string
	SpeechVoice       string
	DBType            string
	DBFilename        string
	DBURL             string
}

// Displayed holds the settings of the running instance, populated by
// ReadConfig at startup.
var Displayed Settings

// ReadConfig loads settings.json from the working directory, overlaid with
// STYLEPAD_* environment variables. A missing config file is fine; defaults
// carry the instance.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("stylepad")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
		}
	}

	viper.SetDefault(Title, "Stylepad")
	viper.SetDefault(IP, "0.0.0.0")
	viper.SetDefault(Port, "9002")

	viper.SetDefault(DefaultStyleFontFamily, "Geneva")
	viper.SetDefault(DefaultStylePointSize, 12)
	viper.SetDefault(KnownFontFamilies, []string{
		"Geneva", "Courier", "Times", "Helvetica", "Monaco", "Palatino",
	})

	viper.SetDefault(SpeechVoice, "voice-default")

	viper.SetDefault(DBType, SQLITE)
	viper.SetDefault(DBSettingsFilename, "var/stylepad.db")
	viper.SetDefault(DBSettingsURL, "postgres://localhost:5432/stylepad?sslmode=disable")

	var loaded = Settings{
		Title:             viper.GetString(Title),
		IP:                viper.GetString(IP),
		Port:              viper.GetString(Port),
		DefaultFontFamily: viper.GetString(DefaultStyleFontFamily),
		DefaultPointSize:  viper.GetFloat64(DefaultStylePointSize),
		KnownFontFamilies: viper.GetStringSlice(KnownFontFamilies),
		SpeechVoice:       viper.GetString(SpeechVoice),
		DBType:            viper.GetString(DBType),
		DBFilename:        viper.GetString(DBSettingsFilename),
		DBURL:             viper.GetString(DBSettingsURL),
	}

	Displayed = loaded
	return &loaded, nil
}
