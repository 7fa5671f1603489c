package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/stylepad/stylepad-go/lib/api"
	"github.com/stylepad/stylepad-go/lib/db"
	"github.com/stylepad/stylepad-go/lib/editor"
	"github.com/stylepad/stylepad-go/lib/fonts"
	settings2 "github.com/stylepad/stylepad-go/lib/settings"
	"github.com/stylepad/stylepad-go/lib/speech"
	"github.com/stylepad/stylepad-go/lib/utils"
)

func main() {
	setupLogger := utils.SetupLogger()
	defer setupLogger.Sync()

	settings, err := settings2.ReadConfig("")
	if err != nil {
		setupLogger.Fatal("Error reading settings: " + err.Error())
		return
	}
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	setupLogger.Info("Starting " + settings2.Displayed.Title + "...")
	setupLogger.Info("Report bugs at https://github.com/stylepad/stylepad-go/issues")

	dataStore, err := db.NewDataStore(settings, setupLogger)
	if err != nil {
		setupLogger.Fatal("Error opening document store: " + err.Error())
		return
	}
	defer dataStore.Close()

	resolver := fonts.NewStaticResolver(settings.DefaultFontFamily, settings.KnownFontFamilies...)
	editorManager := editor.NewManager(dataStore, resolver, setupLogger)

	synthesizer := speech.NewSimulatedSynthesizer(setupLogger)
	speechManager := speech.NewManager(synthesizer, settings.SpeechVoice, setupLogger)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	api.InitAPI(app, editorManager, speechManager, validatorEvaluator, setupLogger)

	fiberString := fmt.Sprintf("%s:%s", settings.IP, settings.Port)
	setupLogger.Info("Listening on " + fiberString)
	err = app.Listen(fiberString)
	if err != nil {
		return
	}
}
