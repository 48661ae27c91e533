package room

import (
	"github.com/Polsaker/dongerdong/internal/models"
	"go.uber.org/zap"
)

// Announcer matches game.Announcer.
type Announcer interface {
	Announce(roomID, text string, emphasis models.Emphasis)
}

// LogAnnouncer writes every room line to the log.
type LogAnnouncer struct {
	logger *zap.Logger
}

func NewLogAnnouncer(logger *zap.Logger) *LogAnnouncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogAnnouncer{logger: logger}
}

func (a *LogAnnouncer) Announce(roomID, text string, emphasis models.Emphasis) {
	a.logger.Info("Room announcement",
		zap.String("room", roomID),
		zap.String("emphasis", string(emphasis)),
		zap.String("text", text))
}

// Fanout delivers each line to every announcer in order.
type Fanout []Announcer

func (f Fanout) Announce(roomID, text string, emphasis models.Emphasis) {
	for _, a := range f {
		a.Announce(roomID, text, emphasis)
	}
}
