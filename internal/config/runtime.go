package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("HORABOT_RUNTIME_PATH")
	if path == "" {
		path = ".horabot"
	}
	return resolveRuntimePath(path)
}

// resolveRuntimePath anchors relative runtime paths in the user's home
// directory. Every consumer of the runtime dir goes through it, so the .env
// file, the database and the readline history always share one location.
func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func IsDebug() bool {
	return os.Getenv("HORABOT_DEBUG") == "1"
}
