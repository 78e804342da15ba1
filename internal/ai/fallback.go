package ai

import (
	"fmt"
	"strings"
)

// Static candidate tables used when the text service is unavailable or its
// reply is unusable. Keyword buckets are checked before region buckets: the
// prompt describes what the user actually asked for.

const minFallbackSize = 6

// fillerSong pads fallback lists that come up short.
var fillerSong = Song{Title: "Never Gonna Give You Up", Artist: "Rick Astley"}

var workoutFallback = []Song{
	{Title: "Espresso", Artist: "Sabrina Carpenter"},
	{Title: "Physical", Artist: "Dua Lipa"},
	{Title: "Blinding Lights", Artist: "The Weeknd"},
	{Title: "Paint The Town Red", Artist: "Doja Cat"},
	{Title: "rockstar", Artist: "Post Malone"},
	{Title: "SICKO MODE", Artist: "Travis Scott"},
}

var chillFallback = []Song{
	{Title: "Birds of a Feather", Artist: "Billie Eilish"},
	{Title: "Good Days", Artist: "SZA"},
	{Title: "Best Part", Artist: "Daniel Caesar"},
	{Title: "telepatía", Artist: "Kali Uchis"},
	{Title: "Sunflower", Artist: "Rex Orange County"},
	{Title: "Sofia", Artist: "Clairo"},
}

var generalFallback = []Song{
	{Title: "Espresso", Artist: "Sabrina Carpenter"},
	{Title: "Good Luck, Babe!", Artist: "Chappell Roan"},
	{Title: "Birds of a Feather", Artist: "Billie Eilish"},
	{Title: "Die With A Smile", Artist: "Lady Gaga & Bruno Mars"},
	{Title: "A Bar Song (Tipsy)", Artist: "Shaboozey"},
	{Title: "Beautiful Things", Artist: "Benson Boone"},
}

var regionFallback = map[string][]Song{
	"KR": {
		{Title: "Supernova", Artist: "aespa"},
		{Title: "Klaxon", Artist: "(G)I-DLE"},
		{Title: "God of Music", Artist: "SEVENTEEN"},
		{Title: "Get Up", Artist: "NewJeans"},
		{Title: "Magnetic", Artist: "ILLIT"},
		{Title: "Seven", Artist: "Jung Kook"},
	},
	"JP": {
		{Title: "アイドル", Artist: "YOASOBI"},
		{Title: "唱", Artist: "Ado"},
		{Title: "ケセラセラ", Artist: "Mrs.GREEN APPLE"},
		{Title: "白日", Artist: "King Gnu"},
		{Title: "Subtitle", Artist: "Official髭男dism"},
		{Title: "Bling-Bang-Bang-Born", Artist: "Creepy Nuts"},
	},
	"IN": {
		{Title: "Brown Munde", Artist: "AP Dhillon"},
		{Title: "Kesariya", Artist: "Arijit Singh"},
		{Title: "Lover", Artist: "Diljit Dosanjh"},
		{Title: "Mirchi", Artist: "Divine"},
		{Title: "Jugnu", Artist: "Badshah"},
		{Title: "Naach Meri Rani", Artist: "Guru Randhawa"},
	},
	"BR": {
		{Title: "Envolver", Artist: "Anitta"},
		{Title: "Chico", Artist: "Luísa Sonza"},
		{Title: "K.O.", Artist: "Pabllo Vittar"},
		{Title: "Maldivas", Artist: "Ludmilla"},
		{Title: "Olha a Explosão", Artist: "Kevinho"},
		{Title: "Coração de Gelo", Artist: "MC Ryan SP"},
	},
}

var keywordBuckets = []struct {
	keywords []string
	songs    []Song
}{
	{keywords: []string{"workout", "gym", "running", "energetic"}, songs: workoutFallback},
	{keywords: []string{"chill", "relax", "study", "calm"}, songs: chillFallback},
}

func fallbackSongs(prompt, region string) []Song {
	promptLower := strings.ToLower(prompt)
	for _, bucket := range keywordBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(promptLower, kw) {
				return padFallback(bucket.songs)
			}
		}
	}
	if songs, ok := regionFallback[region]; ok {
		return padFallback(songs)
	}
	return padFallback(generalFallback)
}

func fallbackQueries(prompt, region string) []string {
	songs := fallbackSongs(prompt, region)
	queries := make([]string, 0, len(songs))
	for _, s := range songs {
		queries = append(queries, fmt.Sprintf("%s %s official music video", s.Artist, s.Title))
	}
	return queries
}

func padFallback(songs []Song) []Song {
	out := make([]Song, len(songs), max(len(songs), minFallbackSize))
	copy(out, songs)
	for len(out) < minFallbackSize {
		out = append(out, fillerSong)
	}
	return out
}
