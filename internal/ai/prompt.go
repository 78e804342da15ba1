package ai

import (
	"fmt"
	"strings"
	"time"
)

// Trending context embedded in generation prompts. Region entries exist for
// markets with strong local catalogs; everything else gets the global bucket.
var trendingGlobal = struct {
	Viral  string
	TikTok string
	Albums string
}{
	Viral:  "Sabrina Carpenter - Espresso, Chappell Roan - Good Luck Babe, Billie Eilish - Birds of a Feather, Shaboozey - A Bar Song, Benson Boone - Beautiful Things",
	TikTok: "APT by Bruno Mars & ROSÉ, Die With A Smile by Lady Gaga & Bruno Mars, I Am Music by Alicia Keys, Austin by Dasha",
	Albums: "The Tortured Poets Department - Taylor Swift, Hit Me Hard and Soft - Billie Eilish, Short n Sweet - Sabrina Carpenter",
}

var trendingByRegion = map[string]string{
	"US": "Shaboozey, Zach Bryan, Morgan Wallen, Chappell Roan, Sabrina Carpenter, Post Malone",
	"UK": "Central Cee, Dave, ArrDee, Cat Burns, PinkPantheress, Fred again..",
	"KR": "aespa - Supernova, (G)I-DLE - Klaxon, SEVENTEEN - God of Music, NewJeans - Get Up",
	"JP": "YOASOBI - アイドル, Mrs.GREEN APPLE, King Gnu, Ado - 唱, Official髭男dism",
	"IN": "AP Dhillon, Divine, Diljit Dosanjh, Arijit Singh, Raftaar, Badshah",
	"BR": "Anitta, Luísa Sonza, Pabllo Vittar, Ludmilla, Kevinho, MC Ryan SP",
	"ES": "Bad Gyal, C.Tangana, Rosalía, Quevedo, Bizarrap, Rauw Alejandro",
}

func regionHint(region string) string {
	if hint, ok := trendingByRegion[region]; ok {
		return hint
	}
	return trendingGlobal.Viral
}

func promptHeader(region string) string {
	currentDate := time.Now().Format("January 2, 2006")

	var b strings.Builder
	fmt.Fprintf(&b, "You are a music expert with knowledge of current trends as of %s.\n\n", currentDate)
	b.WriteString("CURRENT TRENDING CONTEXT:\n")
	fmt.Fprintf(&b, "- Global Viral: %s\n", trendingGlobal.Viral)
	fmt.Fprintf(&b, "- TikTok Popular: %s\n", trendingGlobal.TikTok)
	fmt.Fprintf(&b, "- Major Albums: %s\n", trendingGlobal.Albums)
	if region != "" {
		fmt.Fprintf(&b, "- %s Regional: %s\n", region, regionHint(region))
	}
	return b.String()
}

func buildSongPrompt(prompt, region string, count int) string {
	var b strings.Builder
	b.WriteString(promptHeader(region))
	fmt.Fprintf(&b, "\nUser wants: %q\n\n", prompt)
	fmt.Fprintf(&b, "Generate %d songs matching their request.\n\n", count)
	b.WriteString(`IMPORTANT RULES:
1. Use trending artists from the context above when relevant
2. Mix 70% recent hits with 30% classics that fit the vibe
3. Each song should be a different artist - NO REPEATS
4. Consider the user's prompt mood/genre but include trending context

Return ONLY a JSON array of songs, no other text or markdown. Each song must have "title" and "artist" fields:
[{"title": "Song Title", "artist": "Artist Name"}, ...]`)
	return b.String()
}

func buildQueryPrompt(prompt, region string, count int) string {
	var b strings.Builder
	b.WriteString(promptHeader(region))
	fmt.Fprintf(&b, "\nUser wants: %q\n\n", prompt)
	fmt.Fprintf(&b, "Generate %d YouTube search queries that will find diverse, current music matching their request.\n", count)
	b.WriteString(`Each query should be optimized for YouTube search to find official music videos.

IMPORTANT RULES:
1. Use trending artists from the context above when relevant
2. Mix 70% recent hits with 30% classics that fit the vibe
3. Each query should be a different artist - NO REPEATS
4. Format: "Artist Name Song Title official music video" or "Artist Name Song Title"
5. Consider the user's prompt mood/genre but include trending context

Return ONLY a JSON array of search query strings:
["query1", "query2", "query3", ...]`)
	return b.String()
}
