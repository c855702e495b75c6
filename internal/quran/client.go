// Package quran is a thin HTTP client for the AlQuran.cloud API. It covers
// the ayah text, edition catalog and juz endpoints the rest of the service
// consumes.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hidayah-ai/internal/cache"
)

// DefaultBaseURL is the public AlQuran.cloud v1 endpoint.
const DefaultBaseURL = "https://api.alquran.cloud/v1"

const (
	requestTimeout = 15 * time.Second
	juzTTL         = time.Hour
)

// Client fetches scripture text and edition metadata from AlQuran.cloud.
type Client struct {
	BaseURL string
	client  *http.Client
	cache   cache.Store
}

// NewClient creates a Client against the given base URL. Juz fetches are
// cached in store; pass cache.Noop{} to disable caching.
func NewClient(baseURL string, store cache.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		cache:   store,
	}
}

// apiResponse is the common AlQuran.cloud envelope.
type apiResponse struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if envelope.Code != http.StatusOK {
		return fmt.Errorf("api error: code %d status %q", envelope.Code, envelope.Status)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// AyahText fetches the text of one ayah in one edition. A missing text is
// returned as an empty string, not an error.
func (c *Client) AyahText(ctx context.Context, surah, ayah int, edition string) (string, error) {
	var data struct {
		Text string `json:"text"`
	}
	path := fmt.Sprintf("/ayah/%d:%d/%s", surah, ayah, url.PathEscape(edition))
	if err := c.get(ctx, path, &data); err != nil {
		return "", err
	}
	return data.Text, nil
}

// ListEditions fetches the edition catalog, optionally narrowed server-side.
func (c *Client) ListEditions(ctx context.Context, filter EditionFilter) ([]Edition, error) {
	q := url.Values{}
	if filter.Format != "" {
		q.Set("format", filter.Format)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Language != "" {
		q.Set("language", filter.Language)
	}

	path := "/edition"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var editions []Edition
	if err := c.get(ctx, path, &editions); err != nil {
		return nil, err
	}
	return editions, nil
}

// juzPayload is the raw shape of the /juz endpoint.
type juzPayload struct {
	Number int `json:"number"`
	Ayahs  []struct {
		Number        int    `json:"number"`
		Text          string `json:"text"`
		Audio         string `json:"audio"`
		NumberInSurah int    `json:"numberInSurah"`
		Page          int    `json:"page"`
		Juz           int    `json:"juz"`
		Surah         struct {
			Number                 int    `json:"number"`
			Name                   string `json:"name"`
			EnglishName            string `json:"englishName"`
			EnglishNameTranslation string `json:"englishNameTranslation"`
		} `json:"surah"`
	} `json:"ayahs"`
}

func (c *Client) fetchJuz(ctx context.Context, number int, edition string) (juzPayload, error) {
	key := cache.Key("juz", number, edition)
	return cache.GetOrCompute(c.cache, key, juzTTL, func() (juzPayload, error) {
		var data juzPayload
		path := fmt.Sprintf("/juz/%d/%s", number, url.PathEscape(edition))
		if err := c.get(ctx, path, &data); err != nil {
			return juzPayload{}, err
		}
		return data, nil
	})
}

// CombinedJuz fetches a juz in the Arabic recitation edition and merges in
// the English and Urdu translations. The Arabic edition is authoritative:
// its failure fails the call, while translation failures degrade to empty
// strings on the affected verses.
func (c *Client) CombinedJuz(ctx context.Context, number int) ([]Ayah, error) {
	if number < 1 || number > JuzCount {
		return nil, fmt.Errorf("juz number %d out of range 1..%d", number, JuzCount)
	}

	arabic, err := c.fetchJuz(ctx, number, ArabicEdition)
	if err != nil {
		return nil, fmt.Errorf("fetch juz %d: %w", number, err)
	}

	english := make(map[int]string)
	if data, err := c.fetchJuz(ctx, number, EnglishEdition); err == nil {
		for _, a := range data.Ayahs {
			english[a.Number] = a.Text
		}
	}
	urdu := make(map[int]string)
	if data, err := c.fetchJuz(ctx, number, UrduEdition); err == nil {
		for _, a := range data.Ayahs {
			urdu[a.Number] = a.Text
		}
	}

	combined := make([]Ayah, 0, len(arabic.Ayahs))
	for _, a := range arabic.Ayahs {
		combined = append(combined, Ayah{
			Number:           a.Number,
			NumberInSurah:    a.NumberInSurah,
			SurahNumber:      a.Surah.Number,
			SurahName:        a.Surah.EnglishName,
			SurahEnglishName: a.Surah.EnglishNameTranslation,
			SurahArabicName:  a.Surah.Name,
			Arabic:           a.Text,
			English:          english[a.Number],
			Urdu:             urdu[a.Number],
			AudioURL:         a.Audio,
			Page:             a.Page,
			Juz:              a.Juz,
		})
	}
	return combined, nil
}
