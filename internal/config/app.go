package config

import "os"

func LogPath() string {
	return os.Getenv("APP_LOG_PATH")
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
