package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Scoring holds the search-result ranking weights. These are empirical tuning
// knobs, so they live in configuration rather than as literals in the resolver.
type Scoring struct {
	OfficialMarker  int `json:"officialMarker"`
	MusicVideoTitle int `json:"musicVideoTitle"`
	LivePenalty     int `json:"livePenalty"`
	HighThumbnail   int `json:"highThumbnail"`
	Threshold       int `json:"threshold"`
}

func DefaultScoring() Scoring {
	return Scoring{
		OfficialMarker:  10,
		MusicVideoTitle: 5,
		LivePenalty:     5,
		HighThumbnail:   2,
		Threshold:       10,
	}
}

type Config struct {
	GeminiAPIKey  string
	YouTubeAPIKey string
	Addr          string
	DefaultRegion string
	BatchMode     bool
	Scoring       Scoring
}

type fileConfig struct {
	Addr          string   `json:"addr"`
	DefaultRegion string   `json:"defaultRegion"`
	BatchMode     *bool    `json:"batchMode"`
	Scoring       *Scoring `json:"scoring"`
}

func init() {
	_ = godotenv.Load()
}

func Load() Config {
	fc := loadFileConfig()

	addr := firstNonEmpty(os.Getenv("MOODTUBE_ADDR"), fc.Addr, ":8080")
	region := firstNonEmpty(os.Getenv("MOODTUBE_REGION"), fc.DefaultRegion, "US")

	batch := false
	if fc.BatchMode != nil {
		batch = *fc.BatchMode
	}
	if v := os.Getenv("MOODTUBE_BATCH"); v != "" {
		batch = v == "1" || v == "true"
	}

	scoring := DefaultScoring()
	if fc.Scoring != nil {
		scoring = *fc.Scoring
	}

	return Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		Addr:          addr,
		DefaultRegion: region,
		BatchMode:     batch,
		Scoring:       scoring,
	}
}

func loadFileConfig() fileConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileConfig{}
	}
	configPath := filepath.Join(home, ".config", "moodtube", "config.json")
	b, err := os.ReadFile(configPath)
	if err != nil {
		return fileConfig{}
	}
	var fc fileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return fileConfig{}
	}
	return fc
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
