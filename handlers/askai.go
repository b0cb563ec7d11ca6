package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/darshan103/chatpdfbackend/services/document"
	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxUploadBytes bounds how much of an uploaded PDF is read into memory.
const maxUploadBytes = 32 << 20 // 32 MiB

// AskAIHandler exposes the upload and question endpoints.
type AskAIHandler struct {
	DocumentService document.DocumentService
}

func NewAskAIHandler(svc document.DocumentService) *AskAIHandler {
	return &AskAIHandler{DocumentService: svc}
}

// AskRequest is the expected input for POST /api/askgemini.
type AskRequest struct {
	Question   string `json:"question"`
	DocumentID string `json:"documentId"`
}

// UploadFileHandler handles POST /api/upload with a multipart "pdf" field.
func (h *AskAIHandler) UploadFileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field 'pdf'"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Upload error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading or parsing PDF"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		logger.Error("Upload error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading or parsing PDF"})
		return
	}

	doc, err := h.DocumentService.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		logger.Error("Upload error", zap.String("file", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading or parsing PDF"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "PDF uploaded successfully!",
		"documentId": doc.ID,
	})
}

// AskGeminiHandler handles POST /api/askgemini.
func (h *AskAIHandler) AskGeminiHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	answer, err := h.DocumentService.Ask(c.Request.Context(), req.DocumentID, req.Question)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found. Upload it again."})
			return
		}
		logger.Error("Error fetching AI response", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching AI response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
