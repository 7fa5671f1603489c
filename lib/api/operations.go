package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	errors2 "github.com/stylepad/stylepad-go/lib/api/errors"
	"github.com/stylepad/stylepad-go/lib/editor"
	"github.com/stylepad/stylepad-go/lib/exception"
	"github.com/stylepad/stylepad-go/lib/runbuffer"
	"github.com/stylepad/stylepad-go/lib/speech"
)

// CreateDocumentRequest represents the request to create a document
type CreateDocumentRequest struct {
	Text string `json:"text"`
}

// DocumentIdResponse represents the response with a document ID
type DocumentIdResponse struct {
	DocumentId string `json:"documentId"`
}

// RunView represents one styled run of a document
type RunView struct {
	Text       string  `json:"text"`
	FontFamily string  `json:"fontFamily"`
	PointSize  float64 `json:"pointSize"`
	Bold       bool    `json:"bold"`
	Italic     bool    `json:"italic"`
	Underline  bool    `json:"underline"`
}

// DocumentResponse represents a document with its styled runs
type DocumentResponse struct {
	DocumentId string    `json:"documentId"`
	Text       string    `json:"text"`
	Runs       []RunView `json:"runs"`
}

// SelectionRequest represents a character offset selection
type SelectionRequest struct {
	Start  int `json:"start" validate:"gte=0"`
	Length int `json:"length" validate:"gte=0"`
}

// FontFamilyRequest represents the request to set the font family
type FontFamilyRequest struct {
	SelectionRequest
	FontFamily string `json:"fontFamily" validate:"required"`
}

// FontSizeRequest represents the request to set the point size
type FontSizeRequest struct {
	SelectionRequest
	PointSize float64 `json:"pointSize" validate:"gt=0"`
}

// InsertTextRequest represents the request to type text at the selection
type InsertTextRequest struct {
	SelectionRequest
	Text string `json:"text" validate:"required"`
}

// SpeakRequest represents the request to speak text aloud
type SpeakRequest struct {
	Text string `json:"text" validate:"required"`
}

// VoiceRequest represents the request to select a voice
type VoiceRequest struct {
	VoiceId string `json:"voiceId" validate:"required"`
}

// SpeechStatusResponse represents the observable speech state
type SpeechStatusResponse struct {
	State string `json:"state"`
	Voice string `json:"voiceId"`
}

func documentView(document *editor.Document) DocumentResponse {
	var runs = document.Runs()
	var views = make([]RunView, 0, len(runs))
	for _, run := range runs {
		views = append(views, RunView{
			Text:       run.Text,
			FontFamily: run.Attributes.FontFamily,
			PointSize:  run.Attributes.PointSize,
			Bold:       run.Attributes.Bold,
			Italic:     run.Attributes.Italic,
			Underline:  run.Attributes.Underline,
		})
	}
	return DocumentResponse{
		DocumentId: document.Id,
		Text:       document.Text(),
		Runs:       views,
	}
}

func CreateDocument(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request CreateDocumentRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(errors2.InvalidRequestError)
		}

		document, err := manager.CreateDocument(request.Text)
		if err != nil {
			logger.Errorw("error creating document", "error", err)
			return c.Status(500).JSON(errors2.InternalServerError)
		}
		return c.Status(201).JSON(DocumentIdResponse{DocumentId: document.Id})
	}
}

func GetDocument(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		document, err := getDocumentSafe(c, manager, logger)
		if document == nil {
			return err
		}
		return c.JSON(documentView(document))
	}
}

func ListDocuments(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids, err := manager.DocumentIds()
		if err != nil {
			logger.Errorw("error listing documents", "error", err)
			return c.Status(500).JSON(errors2.InternalServerError)
		}
		if ids == nil {
			ids = []string{}
		}
		return c.JSON(ids)
	}
}

func SaveDocument(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var documentId = c.Params("docId")
		if err := manager.SaveDocument(documentId); err != nil {
			return mapDocumentError(c, documentId, err, logger)
		}
		return c.SendStatus(200)
	}
}

func DeleteDocument(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var documentId = c.Params("docId")
		if err := manager.DeleteDocument(documentId); err != nil {
			return mapDocumentError(c, documentId, err, logger)
		}
		return c.SendStatus(200)
	}
}

func ExportText(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		document, err := getDocumentSafe(c, manager, logger)
		if document == nil {
			return err
		}
		c.Set("Content-Type", "text/plain; charset=utf-8")
		return c.SendString(document.Text())
	}
}

func InsertText(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request InsertTextRequest
		document, err := bindSelectionRequest(c, manager, validate, logger, &request, &request.SelectionRequest)
		if document == nil {
			return err
		}
		document.InsertText(request.Text)
		return c.SendStatus(200)
	}
}

func DeleteSelection(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request SelectionRequest
		document, err := bindSelectionRequest(c, manager, validate, logger, &request, &request)
		if document == nil {
			return err
		}
		document.DeleteSelection()
		return c.SendStatus(200)
	}
}

// ApplyFontFamily sets the font family over the selection. Side effect only,
// matching the editor-action capability contract.
func ApplyFontFamily(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request FontFamilyRequest
		document, err := bindSelectionRequest(c, manager, validate, logger, &request, &request.SelectionRequest)
		if document == nil {
			return err
		}
		document.ApplyFontFamily(request.FontFamily)
		return c.SendStatus(200)
	}
}

func ApplyFontSize(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request FontSizeRequest
		document, err := bindSelectionRequest(c, manager, validate, logger, &request, &request.SelectionRequest)
		if document == nil {
			return err
		}
		document.ApplyFontSize(request.PointSize)
		return c.SendStatus(200)
	}
}

func ToggleBold(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return toggleHandler(manager, validate, logger, (*editor.Document).ToggleBold)
}

func ToggleItalic(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return toggleHandler(manager, validate, logger, (*editor.Document).ToggleItalic)
}

func ToggleUnderline(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger) fiber.Handler {
	return toggleHandler(manager, validate, logger, (*editor.Document).ToggleUnderline)
}

func toggleHandler(manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger, toggle func(*editor.Document)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request SelectionRequest
		document, err := bindSelectionRequest(c, manager, validate, logger, &request, &request)
		if document == nil {
			return err
		}
		toggle(document)
		return c.SendStatus(200)
	}
}

func UndoDocument(manager *editor.Manager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		document, err := getDocumentSafe(c, manager, logger)
		if document == nil {
			return err
		}
		document.Undo()
		return c.SendStatus(200)
	}
}

func Speak(speaker *speech.Manager, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request SpeakRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(errors2.InvalidRequestError)
		}
		if err := validate.Struct(request); err != nil {
			return c.Status(400).JSON(errors2.NewValidationError(err.Error()))
		}
		speaker.Speak(request.Text)
		return c.SendStatus(202)
	}
}

func StopSpeaking(speaker *speech.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		speaker.Stop()
		return c.SendStatus(200)
	}
}

func SetVoice(speaker *speech.Manager, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request VoiceRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(errors2.InvalidRequestError)
		}
		if err := validate.Struct(request); err != nil {
			return c.Status(400).JSON(errors2.NewValidationError(err.Error()))
		}
		speaker.SetVoice(request.VoiceId)
		return c.SendStatus(200)
	}
}

func SpeechStatus(speaker *speech.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(SpeechStatusResponse{
			State: string(speaker.State()),
			Voice: speaker.VoiceId(),
		})
	}
}

// bindSelectionRequest parses and validates a selection-carrying request and
// resolves the target document, applying the requested selection to it.
func bindSelectionRequest(c *fiber.Ctx, manager *editor.Manager, validate *validator.Validate, logger *zap.SugaredLogger, request any, selection *SelectionRequest) (*editor.Document, error) {
	if err := c.BodyParser(request); err != nil {
		return nil, c.Status(400).JSON(errors2.InvalidRequestError)
	}
	if err := validate.Struct(request); err != nil {
		return nil, c.Status(400).JSON(errors2.NewValidationError(err.Error()))
	}

	document, err := getDocumentSafe(c, manager, logger)
	if err != nil {
		return nil, err
	}

	document.SetSelection(runbuffer.NewRange(selection.Start, selection.Length))
	return document, nil
}

func getDocumentSafe(c *fiber.Ctx, manager *editor.Manager, logger *zap.SugaredLogger) (*editor.Document, error) {
	var documentId = c.Params("docId")
	document, err := manager.GetDocument(documentId)
	if err != nil {
		return nil, mapDocumentError(c, documentId, err, logger)
	}
	return document, nil
}

func mapDocumentError(c *fiber.Ctx, documentId string, err error, logger *zap.SugaredLogger) error {
	var notFound *exception.DocumentNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(404).JSON(errors2.DocumentNotFoundError)
	}
	var corrupt *exception.ContentCorruptError
	if errors.As(err, &corrupt) {
		return c.Status(422).JSON(errors2.DocumentCorruptError)
	}
	logger.Errorw("document operation failed", "document", documentId, "error", err)
	return c.Status(500).JSON(errors2.InternalServerError)
}
