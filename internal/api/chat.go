package api

import (
	"net/http"

	"traiteur/internal/assistant"
	"traiteur/internal/assistant/providers"

	"github.com/gin-gonic/gin"
)

// Chat streams the assistant's reply as chunked plain text. Failures
// after streaming has started are delivered inline in the transcript.
func (s *Server) Chat(c *gin.Context) {
	var req struct {
		Messages []providers.Message `json:"messages"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Messages) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"messages": "messages must not be empty"}})
		return
	}

	if !s.assistant.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat assistant is not configured"})
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Transfer-Encoding", "chunked")
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)

	err := s.assistant.Chat(c.Request.Context(), req.Messages, func(chunk string) error {
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		c.Writer.WriteString("\n[error] " + assistant.ErrorText(err))
		if s.monitor != nil {
			s.monitor.RecordChatRequest("error")
		}
		return
	}

	if s.monitor != nil {
		s.monitor.RecordChatRequest("ok")
	}
}

// handleChatWebSocket carries the same transcript over a websocket for
// the interactive UI.
func (s *Server) handleChatWebSocket(c *gin.Context) {
	if !s.assistant.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat assistant is not configured"})
		return
	}
	s.assistant.HandleWebSocket(c)
}
