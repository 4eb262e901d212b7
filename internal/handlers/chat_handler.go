package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cliqtrix/consulting-chatbot/internal/catalog"
	"github.com/cliqtrix/consulting-chatbot/internal/chat"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	"github.com/cliqtrix/consulting-chatbot/internal/httpresp"
)

type ChatHandler struct {
	machine *chat.Machine
}

func NewChatHandler(machine *chat.Machine) *ChatHandler {
	return &ChatHandler{machine: machine}
}

type ChatRequest struct {
	Message string `json:"message"`
	Step    string `json:"step"`
}

// Advance runs one step of the conversation. Both fields may be empty: the
// widget opens the conversation with an empty message and the greeting step.
func (h *ChatHandler) Advance(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	httpresp.OK(c, h.machine.Advance(req.Message, req.Step))
}

// ListServices returns the full catalog for the service carousel.
func (h *ChatHandler) ListServices(c *gin.Context) {
	httpresp.OK(c, gin.H{"services": catalog.All()})
}
