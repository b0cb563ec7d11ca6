package models

import "time"

// Document holds the extracted text of an uploaded PDF. Documents live in
// the document store only; they are never persisted to MongoDB.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Text       string    `json:"-"`
	PageCount  int       `json:"pageCount"`
	StorageKey string    `json:"storageKey,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
