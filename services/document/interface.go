package document

import (
	"context"

	"github.com/darshan103/chatpdfbackend/models"
)

// DocumentService handles PDF uploads and question answering.
type DocumentService interface {
	// Upload extracts the text of the uploaded PDF, stores it, and
	// optionally pushes the raw bytes to object storage.
	Upload(ctx context.Context, filename string, data []byte) (*models.Document, error)
	// Ask answers a question against the document with the given ID, or
	// against the most recent upload when documentID is empty.
	Ask(ctx context.Context, documentID, question string) (string, error)
}
