package ai

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type fakeText struct {
	reply string
	err   error
	calls int
}

func (f *fakeText) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestSongCandidatesNeverEmpty(t *testing.T) {
	t.Parallel()

	for _, text := range []*fakeText{
		{err: fmt.Errorf("service unavailable")},
		{reply: "I would love to help but cannot produce JSON"},
		{reply: "[]"},
	} {
		g := NewGenerator(text)
		songs := g.SongCandidates(context.Background(), "some prompt", "")
		if len(songs) == 0 {
			t.Fatalf("expected non-empty candidates for %+v", text)
		}
	}
}

func TestSongCandidatesWorkoutFallback(t *testing.T) {
	t.Parallel()

	g := NewGenerator(&fakeText{err: fmt.Errorf("boom")})
	songs := g.SongCandidates(context.Background(), "energetic workout music", "")
	if !reflect.DeepEqual(songs, workoutFallback) {
		t.Fatalf("expected workout fallback verbatim, got %v", songs)
	}
}

func TestSongCandidatesChillAndRegionFallback(t *testing.T) {
	t.Parallel()

	g := NewGenerator(&fakeText{err: fmt.Errorf("boom")})

	chill := g.SongCandidates(context.Background(), "chill study session", "")
	if !reflect.DeepEqual(chill, chillFallback) {
		t.Fatalf("expected chill fallback, got %v", chill)
	}

	kr := g.SongCandidates(context.Background(), "something for the drive", "KR")
	if !reflect.DeepEqual(kr, regionFallback["KR"]) {
		t.Fatalf("expected KR fallback, got %v", kr)
	}

	general := g.SongCandidates(context.Background(), "something for the drive", "FR")
	if !reflect.DeepEqual(general, generalFallback) {
		t.Fatalf("expected general fallback, got %v", general)
	}
}

func TestSongCandidatesTruncatesToMax(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 20; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"title": "Song %d", "artist": "Artist %d"}`, i, i)
	}
	b.WriteString("]")

	g := NewGenerator(&fakeText{reply: b.String()})
	songs := g.SongCandidates(context.Background(), "anything", "")
	if len(songs) != MaxSongCandidates {
		t.Fatalf("expected truncation to %d, got %d", MaxSongCandidates, len(songs))
	}
	if songs[0].Title != "Song 0" {
		t.Fatalf("expected order preserved, got %v", songs[0])
	}
}

func TestSongCandidatesIdempotent(t *testing.T) {
	t.Parallel()

	text := &fakeText{reply: `[{"title": "A", "artist": "B"}, {"title": "C", "artist": "D"}]`}
	g := NewGenerator(text)

	first := g.SongCandidates(context.Background(), "prompt", "US")
	second := g.SongCandidates(context.Background(), "prompt", "US")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical replies: %v vs %v", first, second)
	}
}

func TestSearchQueriesCapAndFallback(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 20; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `"query %d"`, i)
	}
	b.WriteString("]")

	g := NewGenerator(&fakeText{reply: b.String()})
	queries := g.SearchQueries(context.Background(), "anything", "")
	if len(queries) != MaxSearchQueries {
		t.Fatalf("expected cap at %d, got %d", MaxSearchQueries, len(queries))
	}

	g = NewGenerator(&fakeText{err: fmt.Errorf("down")})
	queries = g.SearchQueries(context.Background(), "gym session", "")
	if len(queries) == 0 {
		t.Fatalf("expected fallback queries")
	}
	for _, q := range queries {
		if !strings.HasSuffix(q, "official music video") {
			t.Fatalf("fallback query not search-shaped: %q", q)
		}
	}
}

func TestFallbackPadding(t *testing.T) {
	t.Parallel()

	short := []Song{{Title: "Only", Artist: "One"}}
	padded := padFallback(short)
	if len(padded) != minFallbackSize {
		t.Fatalf("expected padding to %d, got %d", minFallbackSize, len(padded))
	}
	for _, s := range padded[1:] {
		if s != fillerSong {
			t.Fatalf("expected filler padding, got %v", s)
		}
	}
}
