package docindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

const convertTimeout = 5 * time.Minute

// Extractor pulls plain text out of uploaded files. PDFs go through an
// external converter sidecar; markdown and plain text are handled locally.
type Extractor struct {
	converterURL string
	httpClient   *http.Client
	markdown     goldmark.Markdown
}

// NewExtractor creates an Extractor. converterURL may be empty, in which
// case PDF uploads are rejected with an explanatory error.
func NewExtractor(converterURL string) *Extractor {
	return &Extractor{
		converterURL: strings.TrimRight(converterURL, "/"),
		httpClient:   &http.Client{Timeout: convertTimeout},
		markdown:     goldmark.New(),
	}
}

// ExtractFile returns the plain text of a file based on its extension.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(ctx, path)
	case ".md", ".markdown":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return e.MarkdownToPlain(content), nil
	case ".txt", "":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (string, error) {
	if e.converterURL == "" {
		return "", fmt.Errorf("pdf conversion requires a converter service")
	}
	if err := api.ValidateFile(path, nil); err != nil {
		return "", fmt.Errorf("invalid pdf: %w", err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pdf page count: %w", err)
	}
	if pages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	markdown, err := e.convertPDF(ctx, path)
	if err != nil {
		return "", err
	}
	return e.MarkdownToPlain([]byte(markdown)), nil
}

type converterResponse struct {
	Document struct {
		MdContent string `json:"md_content"`
	} `json:"document"`
}

// convertPDF uploads the file to the converter sidecar and returns the
// markdown it produced.
func (e *Extractor) convertPDF(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.converterURL+"/v1/convert/file", &buf)
	if err != nil {
		return "", fmt.Errorf("creating convert request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling converter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(payload))
	}

	var parsed converterResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding converter response: %w", err)
	}
	return parsed.Document.MdContent, nil
}

// MarkdownToPlain strips markdown structure, keeping text content with
// paragraph breaks between block elements.
func (e *Extractor) MarkdownToPlain(content []byte) string {
	doc := e.markdown.Parser().Parse(gtext.NewReader(content))

	var b strings.Builder
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *gast.Text:
			b.Write(v.Segment.Value(content))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gast.String:
			b.Write(v.Value)
		case *gast.Paragraph, *gast.Heading, *gast.ListItem:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
		case *gast.FencedCodeBlock:
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				b.Write(line.Value(content))
			}
		}
		return gast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
