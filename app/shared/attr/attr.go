// Package attr holds the slog attribute constructors shared by every module so
// log keys stay consistent across the scoreboard.
package attr

import (
	"log/slog"
	"time"
)

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

func Duration(key string, value time.Duration) slog.Attr {
	return slog.Duration(key, value)
}

// Error logs err under the "error" key. A nil error is logged as an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Player logs a player number (1 or 2).
func Player[T ~uint8 | ~int](p T) slog.Attr {
	return slog.Int("player", int(p))
}

// Delta logs a score delta (+1 or -1).
func Delta[T ~int8 | ~int](d T) slog.Attr {
	return slog.Int("delta", int(d))
}

func Line(name string) slog.Attr {
	return slog.String("line", name)
}

func Surface(name string) slog.Attr {
	return slog.String("surface", name)
}

func GameID(id string) slog.Attr {
	return slog.String("game_id", id)
}
