// Package frontmatter splits source documents into metadata and body.
//
// A document starts with a metadata block fenced by "---" (YAML) or "+++"
// (TOML) on lines of their own. Everything after the closing fence is body.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	yamlFence = "---"
	tomlFence = "+++"
)

// DateLayout is the primary frontmatter date layout.
const DateLayout = "2006-01-02 15:04"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

var _ ports.DocumentParser = (*Parser)(nil)

// Parser implements ports.DocumentParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

type yamlMatter struct {
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags"`
	Date     string   `yaml:"date"`
	Link     string   `yaml:"link"`
	LinkText string   `yaml:"linkText"`
}

type tomlMatter struct {
	Title    string   `toml:"title"`
	Tags     []string `toml:"tags"`
	Date     any      `toml:"date"`
	Link     string   `toml:"link"`
	LinkText string   `toml:"linkText"`
}

// Parse implements ports.DocumentParser.
func (p *Parser) Parse(key domain.Key, raw []byte, loc *time.Location) (domain.Document, error) {
	if loc == nil {
		loc = time.UTC
	}

	fence, matter, body, err := split(raw)
	if err != nil {
		return domain.Document{}, parseError(key, err)
	}

	var meta domain.Metadata
	switch fence {
	case yamlFence:
		meta, err = decodeYAML(matter, loc)
	default:
		meta, err = decodeTOML(matter, loc)
	}
	if err != nil {
		return domain.Document{}, parseError(key, err)
	}

	return domain.Document{Key: key, Metadata: meta, Body: body}, nil
}

func decodeYAML(matter []byte, loc *time.Location) (domain.Metadata, error) {
	var m yamlMatter
	if err := yaml.Unmarshal(matter, &m); err != nil {
		return domain.Metadata{}, err
	}
	if strings.TrimSpace(m.Date) == "" {
		return domain.Metadata{}, domain.ErrMissingDate
	}
	published, err := ParseDate(m.Date, loc)
	if err != nil {
		return domain.Metadata{}, err
	}
	return domain.Metadata{
		Title:     m.Title,
		Tags:      m.Tags,
		Published: published,
		LinkText:  m.LinkText,
		Link:      m.Link,
	}, nil
}

func decodeTOML(matter []byte, loc *time.Location) (domain.Metadata, error) {
	var m tomlMatter
	if err := toml.Unmarshal(matter, &m); err != nil {
		return domain.Metadata{}, err
	}

	var published time.Time
	switch v := m.Date.(type) {
	case nil:
		return domain.Metadata{}, domain.ErrMissingDate
	case time.Time:
		published = v
	case toml.LocalDateTime:
		published = v.AsTime(loc)
	case toml.LocalDate:
		published = v.AsTime(loc)
	case string:
		t, err := ParseDate(v, loc)
		if err != nil {
			return domain.Metadata{}, err
		}
		published = t
	default:
		return domain.Metadata{}, domain.Annotate(domain.ErrInvalidDate, "value", v)
	}

	return domain.Metadata{
		Title:     m.Title,
		Tags:      m.Tags,
		Published: published,
		LinkText:  m.LinkText,
		Link:      m.Link,
	}, nil
}

// ParseDate reads s as "YYYY-MM-DD HH:MM" in loc, falling back to seconds
// precision, RFC 3339 and a bare date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.Annotate(domain.ErrInvalidDate, "value", s)
}

// split separates the metadata block from the body.
func split(raw []byte) (fence string, matter []byte, body string, err error) {
	text := strings.ReplaceAll(string(bytes.TrimPrefix(raw, []byte("\ufeff"))), "\r\n", "\n")

	first, rest, found := strings.Cut(text, "\n")
	fence = strings.TrimRight(first, " \t")
	if fence != yamlFence && fence != tomlFence {
		return "", nil, "", domain.ErrMissingFrontmatter
	}
	if !found {
		return "", nil, "", domain.ErrUnterminatedFrontmatter
	}

	var block strings.Builder
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t") == fence {
			return fence, []byte(block.String()), next, nil
		}
		if !more {
			return "", nil, "", domain.ErrUnterminatedFrontmatter
		}
		block.WriteString(line)
		block.WriteByte('\n')
		rest = next
	}
}

func parseError(key domain.Key, cause error) error {
	return domain.Annotate(errors.Join(domain.ErrParseFailed, cause), "key", key.String())
}
