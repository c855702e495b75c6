package tafsir_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"hidayah-ai/internal/cache"
	"hidayah-ai/internal/quran"
	"hidayah-ai/internal/tafsir"
	"hidayah-ai/internal/tafsir/mocks"
)

func newService(t *testing.T) (*tafsir.Service, *mocks.MockQuranAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockQuranAPI(ctrl)
	return tafsir.NewService(api, cache.Noop{}), api
}

func TestDiscoverUsesFilteredQuery(t *testing.T) {
	svc, api := newService(t)

	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{Format: "text", Type: "tafsir", Language: "en"}).
		Return([]quran.Edition{
			{Identifier: "en.maududi", EnglishName: "Maududi", Language: "en", Format: "text", Type: "tafsir"},
		}, nil)

	sources := svc.Discover(context.Background(), "en")
	if len(sources) != 1 || sources[0].Identifier != "en.maududi" {
		t.Fatalf("unexpected sources: %+v", sources)
	}
}

func TestDiscoverFallsBackToFullCatalog(t *testing.T) {
	svc, api := newService(t)

	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{Format: "text", Type: "tafsir", Language: "en"}).
		Return(nil, errors.New("bad status 500"))
	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{}).
		Return([]quran.Edition{
			{Identifier: "en.asad", Language: "en", Format: "text", Type: "translation"},
			{Identifier: "en.walk", Language: "en", Format: "audio", Type: "translation"},
			{Identifier: "ar.jalalayn", Language: "ar", Format: "text", Type: "tafsir"},
			{Identifier: "en.maududi", Language: "en", Format: "text", Type: "tafsir"},
			{Identifier: "", Language: "en", Format: "text", Type: "tafsir"},
		}, nil)

	sources := svc.Discover(context.Background(), "en")
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %+v", sources)
	}
	if sources[0].Identifier != "en.asad" || sources[1].Identifier != "en.maududi" {
		t.Fatalf("unexpected sources: %+v", sources)
	}
}

func TestDiscoverArabicExcludesTranslations(t *testing.T) {
	svc, api := newService(t)

	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{Format: "text", Type: "tafsir", Language: "ar"}).
		Return(nil, nil)
	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{}).
		Return([]quran.Edition{
			{Identifier: "ar.translation", Language: "ar", Format: "text", Type: "translation"},
			{Identifier: "ar.muyassar", Language: "ar", Format: "text", Type: "tafsir"},
		}, nil)

	sources := svc.Discover(context.Background(), "ar")
	if len(sources) != 1 || sources[0].Identifier != "ar.muyassar" {
		t.Fatalf("unexpected sources: %+v", sources)
	}
}

func TestDiscoverUnknownLanguage(t *testing.T) {
	svc, _ := newService(t)
	if got := svc.Discover(context.Background(), "fr"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestDiscoverTotalFailureYieldsEmpty(t *testing.T) {
	svc, api := newService(t)

	api.EXPECT().ListEditions(gomock.Any(), gomock.Any()).Return(nil, errors.New("down")).Times(2)

	if got := svc.Discover(context.Background(), "en"); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestRankOrdering(t *testing.T) {
	input := []tafsir.Source{
		{Identifier: "en.custom", EnglishName: "Zeta Commentary", Type: "tafsir"},
		{Identifier: "en.asad", EnglishName: "Asad", Type: "translation"},
		{Identifier: "en.maududi", EnglishName: "Maududi", Type: "tafsir"},
		{Identifier: "en.alpha", EnglishName: "Alpha Notes", Type: "tafsir"},
	}

	ranked := tafsir.Rank("en", input)

	want := []string{"en.maududi", "en.alpha", "en.custom", "en.asad"}
	for i, id := range want {
		if ranked[i].Identifier != id {
			t.Fatalf("position %d: want %s, got %s (full: %+v)", i, id, ranked[i].Identifier, ranked)
		}
	}

	// Input must not be mutated.
	if input[0].Identifier != "en.custom" {
		t.Fatalf("input reordered: %+v", input)
	}

	// Same input always ranks the same.
	again := tafsir.Rank("en", input)
	for i := range ranked {
		if again[i].Identifier != ranked[i].Identifier {
			t.Fatalf("rank not deterministic at %d", i)
		}
	}
}

func TestFetchForAyahSkipsFailingSources(t *testing.T) {
	svc, api := newService(t)

	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{Format: "text", Type: "tafsir", Language: "en"}).
		Return([]quran.Edition{
			{Identifier: "en.maududi", EnglishName: "Maududi", Language: "en", Format: "text", Type: "tafsir"},
			{Identifier: "en.asad", EnglishName: "Asad", Language: "en", Format: "text", Type: "tafsir"},
		}, nil)
	api.EXPECT().AyahText(gomock.Any(), 2, 255, "en.maududi").Return("", errors.New("bad status 503"))
	api.EXPECT().AyahText(gomock.Any(), 2, 255, "en.asad").Return("Commentary on the Throne Verse.", nil)

	records := svc.FetchForAyah(context.Background(), 2, 255, "en", 3)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.SourceName != "Asad" || rec.Reference != "2:255" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if _, ok := rec.Metadata["fallback_language_used"]; ok {
		t.Fatal("no fallback should be recorded")
	}
}

func TestFetchForAyahArabicFallback(t *testing.T) {
	svc, api := newService(t)

	// Urdu discovery comes up dry on both paths.
	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{Format: "text", Type: "tafsir", Language: "ur"}).
		Return(nil, nil)
	api.EXPECT().ListEditions(gomock.Any(), quran.EditionFilter{}).Return(nil, nil)

	api.EXPECT().
		ListEditions(gomock.Any(), quran.EditionFilter{Format: "text", Type: "tafsir", Language: "ar"}).
		Return([]quran.Edition{
			{Identifier: "ar.muyassar", Name: "الميسر", Language: "ar", Format: "text", Type: "tafsir"},
		}, nil)
	api.EXPECT().AyahText(gomock.Any(), 1, 1, "ar.muyassar").Return("تفسير", nil)

	records := svc.FetchForAyah(context.Background(), 1, 1, "ur", 2)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	md := records[0].Metadata
	if md["fallback_language_used"] != true {
		t.Fatalf("fallback not stamped: %+v", md)
	}
	if md["requested_language"] != "ur" || md["resolved_language"] != "ar" {
		t.Fatalf("language metadata wrong: %+v", md)
	}
}

func TestFetchForAyahUnknownLanguageNoFallback(t *testing.T) {
	svc, _ := newService(t)

	// Discovery short-circuits for an unknown code and no Arabic retry
	// happens, so no API expectations are set.
	if got := svc.FetchForAyah(context.Background(), 2, 255, "xx", 3); len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}

func TestFetchForAyahZeroBudget(t *testing.T) {
	svc, _ := newService(t)
	if got := svc.FetchForAyah(context.Background(), 2, 255, "en", 0); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
