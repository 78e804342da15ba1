package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	codeFenceRE     = regexp.MustCompile("(?i)```(?:json)?\n?")
	trailingCommaRE = regexp.MustCompile(`,\s*([\]}])`)
	curlyQuotes     = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
)

// extractJSONArray pulls the first [...] span out of a free-text model reply.
func extractJSONArray(text string) (string, bool) {
	cleaned := codeFenceRE.ReplaceAllString(text, "")
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// repairJSON normalizes smart quotes and strips trailing commas, the two
// malformations models actually produce.
func repairJSON(raw string) string {
	return trailingCommaRE.ReplaceAllString(curlyQuotes.Replace(raw), "$1")
}

func parseSongs(text string) ([]Song, error) {
	raw, ok := extractJSONArray(text)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	songs, ok := parseSongsJSON(raw)
	if !ok {
		songs, ok = parseSongsJSON(repairJSON(raw))
	}
	if !ok {
		return nil, fmt.Errorf("failed to parse songs from ai response")
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("no valid songs in ai response")
	}
	return songs, nil
}

func parseSongsJSON(raw string) ([]Song, bool) {
	var anyArr []map[string]any
	if err := json.Unmarshal([]byte(raw), &anyArr); err != nil {
		return nil, false
	}
	seen := map[string]struct{}{}
	out := make([]Song, 0, len(anyArr))
	for _, item := range anyArr {
		title, _ := item["title"].(string)
		artist, _ := item["artist"].(string)
		title = strings.TrimSpace(title)
		artist = strings.TrimSpace(artist)
		if title == "" || artist == "" {
			continue
		}
		song := Song{Title: title, Artist: artist}
		if _, ok := seen[songKey(song)]; ok {
			continue
		}
		seen[songKey(song)] = struct{}{}
		out = append(out, song)
	}
	return out, true
}

func parseQueries(text string) ([]string, error) {
	raw, ok := extractJSONArray(text)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	queries, ok := parseQueriesJSON(raw)
	if !ok {
		queries, ok = parseQueriesJSON(repairJSON(raw))
	}
	if !ok {
		return nil, fmt.Errorf("failed to parse queries from ai response")
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("no valid queries in ai response")
	}
	return queries, nil
}

func parseQueriesJSON(raw string) ([]string, bool) {
	var anyArr []any
	if err := json.Unmarshal([]byte(raw), &anyArr); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(anyArr))
	for _, item := range anyArr {
		q, _ := item.(string)
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		out = append(out, q)
	}
	return out, true
}
