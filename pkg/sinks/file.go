package sinks

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronicle-hq/digital-chronicler/internal/domain"
	"github.com/yuin/goldmark"
)

// fileSink writes each delivered article into the output directory, one file
// per article (csv appends to a shared ledger instead).
type fileSink struct {
	id     string
	typ    string
	dir    string
	format string
	md     goldmark.Markdown
}

func newFileSink(_ context.Context, cfg SinkConfig, _ Logger) (Sink, error) {
	if cfg.File == nil {
		return nil, fmt.Errorf("sink %q missing file configuration", cfg.ID)
	}
	return NewFileSink(cfg.ID, cfg.File.Directory, cfg.File.Format)
}

// NewFileSink builds a file sink directly, without a registry entry. Format
// is one of markdown, html, json, txt, csv; unknown values fall back to
// markdown, matching the lenient format handling elsewhere.
func NewFileSink(id, dir, format string) (Sink, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("file sink %q requires a directory", id)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "markdown", "html", "json", "txt", "csv":
	default:
		format = fileDefaultFormat
	}

	return &fileSink{
		id:     id,
		typ:    TypeFile,
		dir:    dir,
		format: format,
		md:     goldmark.New(),
	}, nil
}

func (f *fileSink) ID() string   { return f.id }
func (f *fileSink) Type() string { return f.typ }

func (f *fileSink) Deliver(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if f.format == "csv" {
		return f.appendCSV(evt)
	}

	content, ext, err := f.render(evt)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%d.%s", slug(evt.Article.GeneratedTitle), evt.EmittedAt.UnixNano(), ext)
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write article file: %w", err)
	}
	return nil
}

func (f *fileSink) render(evt Event) ([]byte, string, error) {
	art := evt.Article
	switch f.format {
	case "json":
		out, err := json.MarshalIndent(evt, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("marshal event: %w", err)
		}
		return out, "json", nil
	case "txt":
		var b bytes.Buffer
		fmt.Fprintf(&b, "%s\n\n%s\n\n", art.GeneratedTitle, art.GeneratedContent)
		fmt.Fprintf(&b, "Topic: %s\nSource: %s\nGenerated: %s\n", art.Topic, art.SourceName, art.GenerationTimestamp)
		return b.Bytes(), "txt", nil
	case "html":
		var body bytes.Buffer
		if err := f.md.Convert([]byte(markdownBody(art)), &body); err != nil {
			return nil, "", fmt.Errorf("render html: %w", err)
		}
		var b bytes.Buffer
		fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n", art.GeneratedTitle)
		b.Write(body.Bytes())
		b.WriteString("</body>\n</html>\n")
		return b.Bytes(), "html", nil
	default:
		return []byte(markdownBody(art)), "md", nil
	}
}

func (f *fileSink) appendCSV(evt Event) error {
	path := filepath.Join(f.dir, "chronicles.csv")
	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv ledger: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if isNew {
		if err := w.Write([]string{"generation_timestamp", "operation", "generated_title", "topic", "source_name", "url"}); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	art := evt.Article
	if err := w.Write([]string{art.GenerationTimestamp, evt.Operation, art.GeneratedTitle, art.Topic, art.SourceName, art.URL}); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func markdownBody(art domain.Article) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", art.GeneratedTitle, art.GeneratedContent)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "- Topic: %s\n", art.Topic)
	fmt.Fprintf(&b, "- Source: %s\n", art.SourceName)
	if art.URL != "" {
		fmt.Fprintf(&b, "- URL: %s\n", art.URL)
	}
	fmt.Fprintf(&b, "- Generated: %s\n", art.GenerationTimestamp)
	return b.String()
}

// slug produces a filesystem-safe name fragment from an article title.
func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	if out == "" {
		out = "article"
	}
	if len(out) > 60 {
		out = out[:60]
	}
	return out
}
