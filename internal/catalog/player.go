package catalog

//go:generate mockgen -source=player.go -destination=mocks/player.go -package=mocks

import "log/slog"

// Player performs the playback side effect for a catalog item.
type Player interface {
	Play(path, title string)
}

// logPlayer stands in for a media engine by logging what would be played.
type logPlayer struct {
	logger *slog.Logger
}

func (p logPlayer) Play(path, title string) {
	p.logger.Info("now playing", "title", title, "path", path)
}
