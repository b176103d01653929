// Package config provides the configuration loader for quill.
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes environment variables that override config keys,
// e.g. QUILL_SITE_BASE_URL for site.base_url.
const EnvPrefix = "QUILL"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using viper.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Defaults returns the configuration used when a key is not set.
func Defaults() map[string]any {
	return map[string]any{
		"site.title":             "quill",
		"site.description":       "",
		"site.author":            "",
		"site.base_url":          "http://localhost",
		"paths.content":          domain.DefaultContentDir,
		"paths.resources":        domain.DefaultResourcesDir,
		"paths.public":           domain.DefaultPublicDir,
		"index.recent":           domain.DefaultRecent,
		"index.tie_break":        string(domain.TieBreakKeyAsc),
		"links.style":            string(domain.LinkStyleFile),
		"links.prefix":           domain.DefaultPostsPrefix,
		"feed.enabled":           true,
		"feed.path":              domain.DefaultFeedPath,
		"feed.limit":             0,
		"markup.highlight_style": "base16-snazzy",
		"markup.cache_size":      0,
		"frontmatter.timezone":   "UTC",
	}
}

// Load reads the configuration file at path, applies QUILL_* environment
// overrides and resolves directories against the file's directory.
func (l *Loader) Load(configPath string) (*domain.Site, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	v := viper.New()
	v.SetConfigFile(absPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
		}
		if l.Logger != nil {
			l.Logger.Warn("no " + filepath.Base(absPath) + " found, using defaults")
		}
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", absPath)
	}

	return resolve(filepath.Dir(absPath), &file)
}

// DiscoverRoot walks up from cwd looking for quill.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	start, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	currentDir := start
	for {
		if _, err := os.Stat(filepath.Join(currentDir, domain.ConfigFileName)); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return start, nil
		}
		currentDir = parentDir
	}
}

func resolve(root string, file *File) (*domain.Site, error) {
	if err := validate(file); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(file.Frontmatter.Timezone)
	if err != nil {
		return nil, invalid("frontmatter.timezone", file.Frontmatter.Timezone)
	}

	site := &domain.Site{
		Title:        file.Site.Title,
		Description:  file.Site.Description,
		Author:       file.Site.Author,
		BaseURL:      strings.TrimRight(file.Site.BaseURL, "/"),
		Root:         root,
		ContentDir:   resolvePath(root, file.Paths.Content),
		ResourcesDir: resolvePath(root, file.Paths.Resources),
		PublicDir:    resolvePath(root, file.Paths.Public),
		Recent:       file.Index.Recent,
		TieBreak:     domain.TieBreak(file.Index.TieBreak),
		Links: domain.LinkPolicy{
			Style:  domain.LinkStyle(file.Links.Style),
			Prefix: path.Clean("/" + file.Links.Prefix),
		},
		Feed: domain.FeedSettings{
			Enabled: file.Feed.Enabled,
			Path:    path.Clean(strings.TrimLeft(file.Feed.Path, "/")),
			Limit:   file.Feed.Limit,
		},
		HighlightStyle:  file.Markup.HighlightStyle,
		RenderCacheSize: file.Markup.CacheSize,
		Location:        loc,
	}

	if site.PublicDir == site.ContentDir || site.PublicDir == root {
		return nil, invalid("paths.public", file.Paths.Public)
	}
	return site, nil
}

func validate(file *File) error {
	switch {
	case file.Index.Recent < 0:
		return invalid("index.recent", file.Index.Recent)
	case file.Index.TieBreak != string(domain.TieBreakKeyAsc) && file.Index.TieBreak != string(domain.TieBreakKeyDesc):
		return invalid("index.tie_break", file.Index.TieBreak)
	case file.Links.Style != string(domain.LinkStyleFile) && file.Links.Style != string(domain.LinkStylePretty):
		return invalid("links.style", file.Links.Style)
	case file.Feed.Limit < 0:
		return invalid("feed.limit", file.Feed.Limit)
	case file.Markup.CacheSize < 0:
		return invalid("markup.cache_size", file.Markup.CacheSize)
	case file.Feed.Enabled && !validFeedPath(file.Feed.Path):
		return invalid("feed.path", file.Feed.Path)
	}

	u, err := url.Parse(file.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return invalid("site.base_url", file.Site.BaseURL)
	}
	return nil
}

func validFeedPath(p string) bool {
	clean := path.Clean(strings.TrimLeft(p, "/"))
	return p != "" && clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, filepath.FromSlash(p))
}

func invalid(key string, value any) error {
	return zerr.With(domain.Annotate(domain.ErrConfigInvalid, "key", key), "value", value)
}
