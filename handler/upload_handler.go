package handler

import (
	"errors"
	"net/http"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type UploadHandler struct {
	statementService *service.StatementService
	maxBytes         int64
	logger           zerolog.Logger
}

// NewUploadHandler builds the upload handler. Request bodies larger than
// maxBytes are rejected; 0 disables the limit.
func NewUploadHandler(statementService *service.StatementService, maxBytes int64, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		statementService: statementService,
		maxBytes:         maxBytes,
		logger:           logger,
	}
}

// UploadStatement handles POST /api/upload. The body of a successful
// response is the model's JSON array as-is, without an envelope.
func (h *UploadHandler) UploadStatement(c *gin.Context) {
	if h.maxBytes > 0 {
		if c.Request.ContentLength > h.maxBytes {
			sendError(c, h.logger, http.StatusRequestEntityTooLarge, MsgFileTooLarge, nil)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	fileHeader, err := c.FormFile("statement")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(c, h.logger, http.StatusRequestEntityTooLarge, MsgFileTooLarge, err)
			return
		}
		sendError(c, h.logger, http.StatusBadRequest, MsgNoFile, nil)
		return
	}

	doc, err := service.ReadUpload(fileHeader, c.PostForm("password"))
	if err != nil {
		sendError(c, h.logger, http.StatusInternalServerError, MsgProcessFailed, err)
		return
	}

	h.logger.Info().Str("file", doc.Filename).Str("content_type", doc.MIMEType).Msg("received statement upload")

	out, err := h.statementService.Analyze(c.Request.Context(), doc)
	switch {
	case errors.Is(err, dto.ErrUnsupportedFileType):
		sendError(c, h.logger, http.StatusBadRequest, MsgUnsupportedType, err)
		return
	case err != nil:
		sendError(c, h.logger, http.StatusInternalServerError, MsgProcessFailed, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(out))
}
