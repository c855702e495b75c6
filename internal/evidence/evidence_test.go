package evidence

import "testing"

func TestNewTafsir(t *testing.T) {
	tests := []struct {
		name  string
		p     TafsirParams
		check func(t *testing.T, r Record)
	}{
		{
			name: "derived citation id is lower-cased and stable",
			p: TafsirParams{
				SourceID:    "en.Maududi",
				SourceName:  "Tafhim al-Qur'an",
				SurahNumber: 2,
				AyahNumber:  255,
				Text:        "  text body  ",
			},
			check: func(t *testing.T, r Record) {
				if r.CitationID != "tafsir:en.maududi:2:255" {
					t.Errorf("CitationID = %q", r.CitationID)
				}
				if r.ID != r.CitationID {
					t.Errorf("ID %q != CitationID %q", r.ID, r.CitationID)
				}
				if r.Reference != "2:255" {
					t.Errorf("Reference = %q", r.Reference)
				}
			},
		},
		{
			name: "excerpt is trimmed and never absent",
			p: TafsirParams{
				SourceID:   "ar.muyassar",
				SourceName: "Al-Muyassar",
				Text:       "   ",
			},
			check: func(t *testing.T, r Record) {
				if r.Excerpt != "" {
					t.Errorf("Excerpt = %q, want empty", r.Excerpt)
				}
				if r.Metadata == nil {
					t.Error("Metadata should never be nil")
				}
			},
		},
		{
			name: "defaults applied",
			p: TafsirParams{
				SourceID:   "ar.jalalayn",
				SourceName: "Jalalayn",
				Text:       "x",
				URL:        "https://api.example/ayah/1:1/ar.jalalayn",
			},
			check: func(t *testing.T, r Record) {
				if r.LinkType != LinkAPIFallback {
					t.Errorf("LinkType = %q", r.LinkType)
				}
				if r.CanonicalStatus != StatusUnverified {
					t.Errorf("CanonicalStatus = %q", r.CanonicalStatus)
				}
				if r.CanonicalURL != r.URL {
					t.Errorf("CanonicalURL = %q, want URL fallback", r.CanonicalURL)
				}
				if r.Authority != "Classical Tafseer" {
					t.Errorf("Authority = %q", r.Authority)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewTafsir(tt.p))
		})
	}
}

func TestNewTafsir_Stability(t *testing.T) {
	p := TafsirParams{SourceID: "en.asad", SourceName: "Asad", SurahNumber: 3, AyahNumber: 7, Text: "t"}
	a := NewTafsir(p)
	b := NewTafsir(p)
	if a.CitationID != b.CitationID {
		t.Errorf("citation id not stable across repeated builds: %q vs %q", a.CitationID, b.CitationID)
	}
}

func TestNewHadith(t *testing.T) {
	r := NewHadith(HadithParams{
		SourceName: "Sunnah Reference",
		Title:      "Book of Fasting",
		Excerpt:    " body ",
		URL:        "https://sunnah.com/bukhari/30",
	})

	if r.SourceID != "sunnah_reference" {
		t.Errorf("SourceID = %q", r.SourceID)
	}
	want := "hadith:sunnah_reference:book of fasting:https://sunnah.com/bukhari/30"
	if r.CitationID != want {
		t.Errorf("CitationID = %q, want %q", r.CitationID, want)
	}
	if r.Excerpt != "body" {
		t.Errorf("Excerpt = %q", r.Excerpt)
	}
	if r.LinkType != LinkSearchFallback {
		t.Errorf("LinkType = %q", r.LinkType)
	}
	if r.Language != "en" {
		t.Errorf("Language = %q, want en default", r.Language)
	}
}

func TestRecord_CloneWithMetadata(t *testing.T) {
	r := NewTafsir(TafsirParams{
		SourceID:   "ar.muyassar",
		SourceName: "Al-Muyassar",
		Text:       "x",
		Metadata:   map[string]any{"edition": "ar.muyassar"},
	})

	clone := r.CloneWithMetadata(map[string]any{"ayah_ref": "2:255"})

	if _, ok := r.Metadata["ayah_ref"]; ok {
		t.Error("original metadata was mutated")
	}
	if clone.Metadata["ayah_ref"] != "2:255" {
		t.Errorf("clone missing stamped key: %v", clone.Metadata)
	}
	if clone.Metadata["edition"] != "ar.muyassar" {
		t.Errorf("clone lost existing key: %v", clone.Metadata)
	}
}
