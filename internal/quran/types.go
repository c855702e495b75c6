package quran

import "fmt"

// Default editions for the combined juz view.
const (
	ArabicEdition  = "ar.alafasy"   // Mishary Rashid Alafasy, with audio
	EnglishEdition = "en.asad"      // Muhammad Asad translation
	UrduEdition    = "ur.jalandhry" // Fateh Muhammad Jalandhry translation
)

// JuzCount is the number of fixed-length sections the text divides into.
const JuzCount = 30

// Edition describes one text or audio edition in the AlQuran.cloud catalog.
type Edition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
}

// EditionFilter narrows a catalog listing. Empty fields are unfiltered.
type EditionFilter struct {
	Language string
	Type     string
	Format   string
}

// Ayah is one verse with merged translations and audio.
type Ayah struct {
	Number           int    `json:"number"`
	NumberInSurah    int    `json:"number_in_surah"`
	SurahNumber      int    `json:"surah_number"`
	SurahName        string `json:"surah_name"`
	SurahEnglishName string `json:"surah_english_name"`
	SurahArabicName  string `json:"surah_arabic_name"`
	Arabic           string `json:"arabic"`
	English          string `json:"english"`
	Urdu             string `json:"urdu"`
	AudioURL         string `json:"audio_url"`
	Page             int    `json:"page"`
	Juz              int    `json:"juz"`
}

// Ref returns the "{surah}:{ayah}" reference for the verse.
func (a Ayah) Ref() string {
	return fmt.Sprintf("%d:%d", a.SurahNumber, a.NumberInSurah)
}

// Surah is the per-chapter summary extracted from a window of ayahs.
type Surah struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	ArabicName  string `json:"arabic_name"`
}

// SurahsIn extracts the unique surahs covered by the given ayahs, in
// first-appearance order.
func SurahsIn(ayahs []Ayah) []Surah {
	seen := make(map[int]bool)
	var surahs []Surah
	for _, a := range ayahs {
		if seen[a.SurahNumber] {
			continue
		}
		seen[a.SurahNumber] = true
		surahs = append(surahs, Surah{
			Number:      a.SurahNumber,
			Name:        a.SurahName,
			EnglishName: a.SurahEnglishName,
			ArabicName:  a.SurahArabicName,
		})
	}
	return surahs
}
