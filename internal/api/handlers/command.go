package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Polsaker/dongerdong/internal/game"
	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// CommandRequest is one chat command. Either Command (with Args) or the raw
// chat line in Text is set.
type CommandRequest struct {
	ActorID string   `json:"actorId" binding:"required"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
	Text    string   `json:"text"`
}

type CommandHandler struct {
	lobby  *game.Lobby
	logger *zap.Logger
}

func NewCommandHandler(lobby *game.Lobby, logger *zap.Logger) *CommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandHandler{lobby: lobby, logger: logger}
}

// BindCommand decodes the request body once so middleware and handler can
// both read it.
func BindCommand(c *gin.Context) (*CommandRequest, error) {
	var req CommandRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return nil, err
	}
	return &req, nil
}

// PostCommand feeds one command into the room's engine
func (h *CommandHandler) PostCommand(c *gin.Context) {
	req, err := BindCommand(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	name, args := req.Command, req.Args
	if req.Text != "" {
		var ok bool
		name, args, ok = models.ParseCommand(req.Text)
		if !ok {
			// plain chat
			c.JSON(http.StatusOK, gin.H{"handled": false})
			return
		}
	}
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "command or text is required",
		})
		return
	}

	cmd := models.Command{
		ActorID:   req.ActorID,
		RoomID:    c.Param("roomId"),
		Name:      name,
		Args:      args,
		Timestamp: time.Now(),
	}

	if err := h.lobby.Handle(c.Request.Context(), cmd); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"handled": true})
}

func (h *CommandHandler) writeError(c *gin.Context, err error) {
	switch {
	case game.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   err.Error(),
			"message": game.UserMessage(err),
		})
	case errors.Is(err, game.ErrUnknownRoom):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, game.ErrMatchRunning), errors.Is(err, game.ErrNoMatch):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	default:
		h.logger.Error("Command failed", zap.String("room", c.Param("roomId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to handle command",
		})
	}
}
