package ai

import "strings"

type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

func songKey(song Song) string {
	return strings.ToLower(song.Artist) + ":::" + strings.ToLower(song.Title)
}
