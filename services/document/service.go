package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darshan103/chatpdfbackend/models"
	ai "github.com/darshan103/chatpdfbackend/services/intelligence"
	"github.com/darshan103/chatpdfbackend/services/storage"
	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadFirstMessage is returned as the answer when no document is available.
// It is an informational answer for the client, not an error.
const UploadFirstMessage = "Please upload a PDF first."

// promptTextLimit caps how much of the extracted text goes into the prompt.
const promptTextLimit = 4000

// ErrDocumentNotFound is returned when a question names a document ID that
// is unknown or has expired from the store.
var ErrDocumentNotFound = errors.New("document not found")

// DefaultDocumentService is the production DocumentService implementation.
type DefaultDocumentService struct {
	Store     DocumentStore
	Extractor TextExtractor
	Generator ai.AnswerGenerator

	// Storage is nil when STORAGE_ENABLED is off; uploads then keep the
	// extracted text only.
	Storage storage.ObjectStorage
}

func (s *DefaultDocumentService) Upload(ctx context.Context, filename string, data []byte) (*models.Document, error) {
	logger := utils.GetLogger()

	result, err := s.Extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract PDF text: %w", err)
	}

	doc := &models.Document{
		ID:         uuid.New().String(),
		Name:       filename,
		Text:       result.Text,
		PageCount:  result.PageCount,
		UploadedAt: time.Now(),
	}

	if s.Storage != nil {
		key := fmt.Sprintf("pdfs/%d_%s", time.Now().UnixMilli(), filename)
		if err := s.Storage.Upload(ctx, key, data, "application/pdf"); err != nil {
			return nil, fmt.Errorf("failed to upload PDF to storage: %w", err)
		}
		doc.StorageKey = key
	}

	if err := s.Store.Put(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	logger.Info("Document uploaded",
		zap.String("documentID", doc.ID),
		zap.String("name", doc.Name),
		zap.Int("pages", doc.PageCount),
		zap.Int("chars", len(doc.Text)))
	return doc, nil
}

func (s *DefaultDocumentService) Ask(ctx context.Context, documentID, question string) (string, error) {
	doc, err := s.resolveDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return UploadFirstMessage, nil
	}

	answer, err := s.Generator.GenerateContent(ctx, BuildPrompt(doc.Text, question))
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}
	return answer, nil
}

// resolveDocument finds the question's target. An explicit unknown ID is an
// error; no ID falls back to the most recent upload, which may be absent.
func (s *DefaultDocumentService) resolveDocument(ctx context.Context, documentID string) (*models.Document, error) {
	if documentID != "" {
		doc, err := s.Store.Get(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load document: %w", err)
		}
		if doc == nil {
			return nil, ErrDocumentNotFound
		}
		return doc, nil
	}
	doc, err := s.Store.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest document: %w", err)
	}
	return doc, nil
}

// BuildPrompt assembles the completion prompt from the document text and the
// caller's question. The text contributes at most its first 4000 characters;
// the question is passed through verbatim.
func BuildPrompt(text, question string) string {
	// Counted in runes, not bytes, so multi-byte text is neither cut short
	// nor split mid-character.
	if runes := []rune(text); len(runes) > promptTextLimit {
		text = string(runes[:promptTextLimit])
	}
	return fmt.Sprintf("You are an AI reading this PDF content:\n\"%s\"\n\nAnswer the question clearly and concisely:\n%s", text, question)
}
