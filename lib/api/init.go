package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/stylepad/stylepad-go/lib/editor"
	"github.com/stylepad/stylepad-go/lib/speech"
)

// InitAPI registers the document and speech routes. The editor manager and
// speech manager are the injected capabilities; handlers never reach for
// globals.
func InitAPI(app *fiber.App, manager *editor.Manager, speaker *speech.Manager, validate *validator.Validate, logger *zap.SugaredLogger) {
	var documents = app.Group("/api/documents")

	documents.Post("/", CreateDocument(manager, validate, logger))
	documents.Get("/", ListDocuments(manager, logger))
	documents.Get("/:docId", GetDocument(manager, logger))
	documents.Post("/:docId/save", SaveDocument(manager, logger))
	documents.Delete("/:docId", DeleteDocument(manager, logger))
	documents.Get("/:docId/export/txt", ExportText(manager, logger))

	documents.Post("/:docId/text", InsertText(manager, validate, logger))
	documents.Post("/:docId/text/delete", DeleteSelection(manager, validate, logger))
	documents.Post("/:docId/undo", UndoDocument(manager, logger))

	documents.Post("/:docId/style/fontFamily", ApplyFontFamily(manager, validate, logger))
	documents.Post("/:docId/style/fontSize", ApplyFontSize(manager, validate, logger))
	documents.Post("/:docId/style/bold", ToggleBold(manager, validate, logger))
	documents.Post("/:docId/style/italic", ToggleItalic(manager, validate, logger))
	documents.Post("/:docId/style/underline", ToggleUnderline(manager, validate, logger))

	var speechGroup = app.Group("/api/speech")
	speechGroup.Post("/speak", Speak(speaker, validate))
	speechGroup.Post("/stop", StopSpeaking(speaker))
	speechGroup.Post("/voice", SetVoice(speaker, validate))
	speechGroup.Get("/status", SpeechStatus(speaker))
}
