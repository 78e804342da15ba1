package youtube

import (
	"regexp"
	"strings"
)

// Best-effort extraction of (artist, song title) from a raw video title and
// channel name. Reasonable on common upload patterns, no more.

var (
	decorationREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\(official music video\)`),
		regexp.MustCompile(`(?i)\(official video\)`),
		regexp.MustCompile(`(?i)\(music video\)`),
		regexp.MustCompile(`(?i)\[official[^\]]*\]`),
		regexp.MustCompile(`(?i)official`),
		regexp.MustCompile(`(?i)music video`),
	}
	bySeparatorRE  = regexp.MustCompile(`(?i) by `)
	artistSuffixRE = regexp.MustCompile(`(?i)(vevo|records|music|official)$`)
)

// ParseTitle heuristically splits a video title into artist and song title,
// falling back to the channel name for the artist.
func ParseTitle(rawTitle, channelTitle string) (artist, songTitle string) {
	cleanTitle := rawTitle
	for _, re := range decorationREs {
		cleanTitle = re.ReplaceAllString(cleanTitle, "")
	}
	cleanTitle = strings.TrimSpace(cleanTitle)

	artist = channelTitle
	songTitle = cleanTitle

	switch {
	case strings.Contains(cleanTitle, " - "):
		parts := strings.SplitN(cleanTitle, " - ", 2)
		artist = strings.TrimSpace(parts[0])
		songTitle = strings.TrimSpace(parts[1])
	case strings.Contains(cleanTitle, ": "):
		parts := strings.SplitN(cleanTitle, ": ", 2)
		artist = strings.TrimSpace(parts[0])
		songTitle = strings.TrimSpace(parts[1])
	case bySeparatorRE.MatchString(cleanTitle):
		parts := bySeparatorRE.Split(cleanTitle, 2)
		songTitle = strings.TrimSpace(strings.ReplaceAll(parts[0], `"`, ""))
		artist = strings.TrimSpace(parts[1])
	}

	artist = strings.TrimSpace(artistSuffixRE.ReplaceAllString(artist, ""))
	songTitle = strings.TrimSpace(strings.Trim(songTitle, `"`))

	if artist == "" {
		artist = "Unknown Artist"
	}
	if songTitle == "" {
		songTitle = cleanTitle
	}
	return artist, songTitle
}
