package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/notsure/internal/scene"
)

// resolveScenes loads scenes by ID, or every known scene when ids is empty.
func resolveScenes(ids []string) ([]*scene.Scene, error) {
	if len(ids) == 0 {
		scenes, err := scene.All(flagSceneDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded scenes", "count", len(scenes), "dir", flagSceneDir)
		return scenes, nil
	}

	scenes := make([]*scene.Scene, 0, len(ids))
	for _, id := range ids {
		s, err := scene.Load("", flagSceneDir, id)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded scene", "id", s.ID, "file", s.FilePath)
		scenes = append(scenes, s)
	}
	return scenes, nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
