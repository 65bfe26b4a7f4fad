package blog

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Post is one rendered blog document. The slug is the file name minus its
// extension; everything else comes from the front-matter and body.
type Post struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Author   string    `json:"author,omitempty"`
	Category string    `json:"category,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Image    string    `json:"image,omitempty"`
	Date     time.Time `json:"date"`
	HTML     string    `json:"html,omitempty"`
}

type frontMatter struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Excerpt  string   `yaml:"excerpt"`
	Author   string   `yaml:"author"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Image    string   `yaml:"image"`
}

const frontMatterFence = "---"

var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	time.RFC3339,
}

func parsePostFile(md goldmark.Markdown, path, slug string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}
	return parsePost(md, raw, slug)
}

func parsePost(md goldmark.Markdown, raw []byte, slug string) (Post, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return Post{}, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return Post{}, fmt.Errorf("front-matter: %w", err)
	}
	if fm.Title == "" {
		return Post{}, fmt.Errorf("front-matter: missing title")
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return Post{}, err
	}

	var rendered bytes.Buffer
	if err := md.Convert(body, &rendered); err != nil {
		return Post{}, fmt.Errorf("render body: %w", err)
	}

	return Post{
		Slug:     slug,
		Title:    fm.Title,
		Excerpt:  fm.Excerpt,
		Author:   fm.Author,
		Category: fm.Category,
		Tags:     fm.Tags,
		Image:    fm.Image,
		Date:     date,
		HTML:     rendered.String(),
	}, nil
}

// splitFrontMatter separates the YAML block between the leading fences from
// the markdown body.
func splitFrontMatter(raw []byte) (meta, body []byte, err error) {
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(content, frontMatterFence+"\n") {
		return nil, nil, fmt.Errorf("front-matter: missing opening fence")
	}

	rest := content[len(frontMatterFence)+1:]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return nil, nil, fmt.Errorf("front-matter: missing closing fence")
	}

	meta = []byte(rest[:end])
	body = []byte(strings.TrimPrefix(rest[end+1+len(frontMatterFence):], "\n"))
	return meta, body, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("front-matter: missing date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("front-matter: unrecognised date %q", value)
}
