package handler

import (
	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// User-facing error messages.
const (
	MsgNoFile          = "No file uploaded."
	MsgUnsupportedType = "Unsupported file type."
	MsgFileTooLarge    = "File too large."
	MsgProcessFailed   = "Failed to process file."
	MsgChatFailed      = "Failed to get response from AI."
	MsgInvalidData     = "Received invalid data from server."
)

// sendError sends a structured error response. err is logged, never returned to the client.
func sendError(c *gin.Context, logger zerolog.Logger, statusCode int, message string, err error) {
	if err != nil {
		ev := logger.Warn()
		if statusCode >= 500 {
			ev = logger.Error()
		}
		ev.Err(err).Int("status", statusCode).Str("path", c.FullPath()).Msg(message)
	}

	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{Error: message})
}
