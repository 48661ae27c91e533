package room

import (
	"go.uber.org/zap"
)

// LogModerator stands in for the chat transport's kick/ban API. A kicked
// player is re-invited right away, so removal is only logged and the
// roster is left alone.
type LogModerator struct {
	logger *zap.Logger
}

func NewLogModerator(logger *zap.Logger) *LogModerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogModerator{logger: logger}
}

func (m *LogModerator) Remove(roomID, id, reason string) error {
	m.logger.Info("Removing player",
		zap.String("room", roomID),
		zap.String("player", id),
		zap.String("reason", reason))
	return nil
}

// ExtendedBan is a placeholder for timed bans after a lost deathmatch.
func (m *LogModerator) ExtendedBan(id string) {
	m.logger.Info("Extended ban requested", zap.String("player", id))
}
