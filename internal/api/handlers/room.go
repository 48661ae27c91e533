package handlers

import (
	"errors"
	"net/http"

	"github.com/Polsaker/dongerdong/internal/game"
	"github.com/Polsaker/dongerdong/internal/room"
	"github.com/Polsaker/dongerdong/internal/websocket"
	"github.com/gin-gonic/gin"
)

// MembershipRequest is a join or leave event of the chat room
type MembershipRequest struct {
	ID          string `json:"id" binding:"required"`
	DisplayName string `json:"displayName"`
	Membership  string `json:"membership" binding:"required,oneof=join leave"`
}

type RoomHandler struct {
	lobby     *game.Lobby
	directory *room.Directory
	hub       *websocket.Hub
}

func NewRoomHandler(lobby *game.Lobby, directory *room.Directory, hub *websocket.Hub) *RoomHandler {
	return &RoomHandler{
		lobby:     lobby,
		directory: directory,
		hub:       hub,
	}
}

// engine resolves the room or writes a 404
func (h *RoomHandler) engine(c *gin.Context) (*game.Engine, bool) {
	e, err := h.lobby.Engine(c.Param("roomId"))
	if err != nil {
		if errors.Is(err, game.ErrUnknownRoom) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get room",
		})
		return nil, false
	}
	return e, true
}

// GetState returns the pending challenges and the running match
func (h *RoomHandler) GetState(c *gin.Context) {
	e, ok := h.engine(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room": e.Snapshot(),
	})
}

func (h *RoomHandler) ListMembers(c *gin.Context) {
	if _, ok := h.engine(c); !ok {
		return
	}

	members := h.directory.Roster(c.Param("roomId")).Members()
	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// PostMembership applies one membership event to the room's roster
func (h *RoomHandler) PostMembership(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if _, ok := h.engine(c); !ok {
		return
	}

	roster := h.directory.Roster(c.Param("roomId"))
	if req.Membership == "join" {
		roster.Join(req.ID, req.DisplayName)
	} else {
		roster.Leave(req.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         req.ID,
		"membership": req.Membership,
	})
}

// Watch streams the room's announcements over a WebSocket
func (h *RoomHandler) Watch(c *gin.Context) {
	if _, ok := h.engine(c); !ok {
		return
	}
	h.hub.ServeWs(c.Writer, c.Request, c.Param("roomId"))
}
