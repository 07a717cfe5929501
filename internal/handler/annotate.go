package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxDocumentBytes caps the size of a document accepted by POST /annotate.
const maxDocumentBytes = 8 << 20

// AnnotateHandler annotates documents posted to it
type AnnotateHandler struct {
	service AnnotateService
}

// AnnotateService interface for dependency injection
type AnnotateService interface {
	AnnotateText(ctx context.Context, doc string, mode annotator.Mode) (string, annotator.Report, error)
}

// AnnotateResponse is the body returned by POST /annotate
type AnnotateResponse struct {
	Document string               `json:"document"`
	Mode     string               `json:"mode"`
	Inserted int                  `json:"inserted"`
	Matches  []annotator.Match    `json:"matches"`
	Missing  []models.LocationKey `json:"missing"`
}

// NewAnnotateHandler creates a new annotate handler
func NewAnnotateHandler(svc AnnotateService) *AnnotateHandler {
	return &AnnotateHandler{service: svc}
}

// Annotate handles POST /annotate requests; the body is the seed document
func (h *AnnotateHandler) Annotate(c *gin.Context) {
	mode, err := annotator.ParseMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode, expected 'city-district' or 'district-images'"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document too large"})
		return
	}

	doc, report, err := h.service.AnnotateText(c.Request.Context(), string(body), mode)
	if err != nil {
		if errors.Is(err, annotator.ErrNotText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "document is not valid UTF-8 text"})
			return
		}
		log.Error().Err(err).Msg("annotate request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	matches := report.Matches
	if matches == nil {
		matches = []annotator.Match{}
	}
	missing := report.Missing
	if missing == nil {
		missing = []models.LocationKey{}
	}

	c.JSON(http.StatusOK, AnnotateResponse{
		Document: doc,
		Mode:     mode.String(),
		Inserted: report.Inserted,
		Matches:  matches,
		Missing:  missing,
	})
}
