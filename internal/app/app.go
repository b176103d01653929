// Package app implements the application layer for quill.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/aggregate"
	"go.trai.ch/quill/internal/engine/querydb"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	discoverer   ports.Discoverer
	reader       ports.SourceReader
	parser       ports.DocumentParser
	markup       ports.MarkupFactory
	pages        ports.PageRenderer
	feed         ports.FeedEncoder
	writer       ports.OutputWriter
	tracer       ports.Tracer
	workers      int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	discoverer ports.Discoverer,
	reader ports.SourceReader,
	parser ports.DocumentParser,
	markup ports.MarkupFactory,
	pages ports.PageRenderer,
	feed ports.FeedEncoder,
	writer ports.OutputWriter,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		discoverer:   discoverer,
		reader:       reader,
		parser:       parser,
		markup:       markup,
		pages:        pages,
		feed:         feed,
		writer:       writer,
		tracer:       tracer,
		workers:      runtime.NumCPU(),
	}
}

// WithWorkers limits how many documents are derived concurrently.
func (a *App) WithWorkers(n int) *App {
	if n > 0 {
		a.workers = n
	}
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// ConfigPath is the configuration file to load. When empty, quill.yaml is
	// searched for from the working directory upwards.
	ConfigPath string
	// SkipInvalid logs and skips documents that fail to parse instead of
	// aborting the build.
	SkipInvalid bool
}

// BuildResult summarizes one build.
type BuildResult struct {
	Documents int
	Skipped   int
	Written   int
	Unchanged int
	Resources int
	Stats     querydb.Stats
}

// Build runs the content pipeline once: documents are discovered, parsed and
// stored in a fresh database, then every page and the feed are derived from it.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, opts BuildOptions) (BuildResult, error) {
	var result BuildResult

	// 1. Load the configuration
	site, err := a.loadSite(opts.ConfigPath)
	if err != nil {
		return result, err
	}

	markup, err := a.markup.NewMarkupRenderer(site)
	if err != nil {
		return result, zerr.Wrap(err, "failed to create markup renderer")
	}

	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttribute("root", site.Root))
	defer span.End()

	// 2. Ingest documents into a database scoped to this run
	db := querydb.New(
		querydb.WithTracer(a.tracer),
		querydb.WithMarkup(markup),
		querydb.WithLinks(site.Links),
		querydb.WithBaseURL(site.BaseURL),
	)

	keys, skipped, err := a.ingest(db, site, opts.SkipInvalid)
	if err != nil {
		span.RecordError(err)
		return result, errors.Join(domain.ErrBuildFailed, err)
	}
	result.Documents = len(keys)
	result.Skipped = skipped
	span.SetAttribute("documents", len(keys))

	// 3. Copy static resources
	resources, err := a.writer.CopyTree(site.ResourcesDir, site.PublicDir)
	if err != nil {
		span.RecordError(err)
		return result, errors.Join(domain.ErrBuildFailed, err)
	}

	// 4. Derive and write every page, refusing to replace a resource
	out := newOutputCounter(a.writer, site.PublicDir, resources.Files)
	if err := a.writeSite(ctx, db, site, keys, out); err != nil {
		span.RecordError(err)
		return result, errors.Join(domain.ErrBuildFailed, err)
	}

	result.Written = int(out.written.Load())
	result.Unchanged = int(out.unchanged.Load())
	result.Resources = resources.Written
	result.Stats = db.Stats()

	a.logger.Info(fmt.Sprintf(
		"built %d documents: %d pages written, %d unchanged, %d resources copied (cache hits %d, misses %d)",
		result.Documents, result.Written, result.Unchanged, result.Resources,
		result.Stats.Hits, result.Stats.Misses,
	))

	return result, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the public directory of the site.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	site, err := a.loadSite(opts.ConfigPath)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s...", site.PublicDir))
	if err := a.writer.Clean(site.PublicDir); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", site.PublicDir))

	return nil
}

func (a *App) loadSite(configPath string) (*domain.Site, error) {
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
		root, err := a.configLoader.DiscoverRoot(cwd)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to find site root")
		}
		configPath = filepath.Join(root, domain.ConfigFileName)
	}

	site, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return site, nil
}

// ingest reads and parses every discovered document and stores it in db.
// It returns the stored keys and the number of documents skipped.
func (a *App) ingest(db *querydb.Database, site *domain.Site, skipInvalid bool) ([]domain.Key, int, error) {
	keys, err := a.discoverer.Discover(site.ContentDir)
	if err != nil {
		return nil, 0, err
	}

	stored := make([]domain.Key, 0, len(keys))
	skipped := 0
	for _, key := range keys {
		raw, err := a.reader.ReadSource(site.ContentDir, key)
		if err != nil {
			return nil, 0, err
		}

		doc, err := a.parser.Parse(key, raw, site.Location)
		if err != nil {
			if skipInvalid && errors.Is(err, domain.ErrParseFailed) {
				a.logger.Warn(fmt.Sprintf("skipping %s: %s", key, strings.ReplaceAll(err.Error(), "\n", ": ")))
				skipped++
				continue
			}
			return nil, 0, err
		}

		if err := db.Set(key, doc); err != nil {
			return nil, 0, err
		}
		stored = append(stored, key)
	}

	return stored, skipped, nil
}

// writeSite renders posts, the index, tag pages and the feed.
func (a *App) writeSite(
	ctx context.Context,
	db *querydb.Database,
	site *domain.Site,
	keys []domain.Key,
	out *outputCounter,
) error {
	posts, err := a.derivePosts(ctx, db, keys)
	if err != nil {
		return err
	}

	for _, key := range keys {
		html, err := a.pages.Post(site, posts[key])
		if err != nil {
			return err
		}
		if err := out.write(site.Links.OutputPath(key), html); err != nil {
			return err
		}
	}

	if err := a.writeIndex(db, site, keys, posts, out); err != nil {
		return err
	}

	if err := a.writeTags(ctx, db, site, keys, posts, out); err != nil {
		return err
	}

	if !site.Feed.Enabled {
		return nil
	}
	return a.writeFeed(ctx, db, site, keys, out)
}

// derivePosts computes the page view of every document concurrently.
func (a *App) derivePosts(ctx context.Context, db *querydb.Database, keys []domain.Key) (map[domain.Key]domain.PostPage, error) {
	built := make([]domain.PostPage, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, key := range keys {
		g.Go(func() error {
			view, err := postPage(ctx, db, key)
			if err != nil {
				return err
			}
			built[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	posts := make(map[domain.Key]domain.PostPage, len(keys))
	for i, key := range keys {
		posts[key] = built[i]
	}
	return posts, nil
}

func postPage(ctx context.Context, db *querydb.Database, key domain.Key) (domain.PostPage, error) {
	doc, err := db.Get(key)
	if err != nil {
		return domain.PostPage{}, err
	}
	tags, err := db.Tags(ctx, key)
	if err != nil {
		return domain.PostPage{}, err
	}
	permalink, err := db.Permalink(ctx, key)
	if err != nil {
		return domain.PostPage{}, err
	}
	excerpt, err := db.Excerpt(ctx, key)
	if err != nil {
		return domain.PostPage{}, err
	}
	content, err := db.Render(ctx, key)
	if err != nil {
		return domain.PostPage{}, err
	}

	return domain.PostPage{
		Document:  doc,
		Tags:      tags,
		Permalink: permalink,
		Excerpt:   excerpt,
		Content:   content,
	}, nil
}

func (a *App) writeIndex(
	db *querydb.Database,
	site *domain.Site,
	keys []domain.Key,
	posts map[domain.Key]domain.PostPage,
	out *outputCounter,
) error {
	recent, err := aggregate.MostRecent(db, site.Recent, keys, aggregate.WithTieBreak(site.TieBreak))
	if err != nil {
		return err
	}

	html, err := a.pages.Index(site, views(recent, posts))
	if err != nil {
		return err
	}
	return out.write(domain.IndexFileName, html)
}

func (a *App) writeTags(
	ctx context.Context,
	db *querydb.Database,
	site *domain.Site,
	keys []domain.Key,
	posts map[domain.Key]domain.PostPage,
	out *outputCounter,
) error {
	groups, err := aggregate.GroupByCategory(ctx, db, keys)
	if err != nil {
		return err
	}

	labels := groups.Labels()
	summaries := make([]domain.TagSummary, 0, len(labels))
	for _, label := range labels {
		docs := groups[label]
		aggregate.SortRecent(docs, aggregate.WithTieBreak(site.TieBreak))

		html, err := a.pages.Tag(site, label, views(docs, posts))
		if err != nil {
			return err
		}
		if err := out.write(domain.TagPagePath(label), html); err != nil {
			return err
		}

		summaries = append(summaries, domain.TagSummary{
			Name:  label,
			URL:   domain.TagURL(label),
			Count: len(docs),
		})
	}

	html, err := a.pages.TagIndex(site, summaries)
	if err != nil {
		return err
	}
	return out.write(domain.TagIndexPath(), html)
}

func (a *App) writeFeed(
	ctx context.Context,
	db *querydb.Database,
	site *domain.Site,
	keys []domain.Key,
	out *outputCounter,
) error {
	items, err := aggregate.BuildFeed(ctx, db, keys, aggregate.WithTieBreak(site.TieBreak))
	if err != nil {
		return err
	}
	if site.Feed.Limit > 0 && len(items) > site.Feed.Limit {
		items = items[:site.Feed.Limit]
	}

	data, err := a.feed.Encode(site, items)
	if err != nil {
		return err
	}
	return out.write(site.Feed.Path, data)
}

func views(docs []domain.Document, posts map[domain.Key]domain.PostPage) []domain.PostPage {
	out := make([]domain.PostPage, 0, len(docs))
	for _, doc := range docs {
		out = append(out, posts[doc.Key])
	}
	return out
}

// outputCounter writes pages under dir and counts what changed on disk.
// Paths owned by copied resources are rejected.
type outputCounter struct {
	writer    ports.OutputWriter
	dir       string
	reserved  map[string]struct{}
	written   atomic.Int64
	unchanged atomic.Int64
}

func newOutputCounter(writer ports.OutputWriter, dir string, reserved []string) *outputCounter {
	o := &outputCounter{
		writer:   writer,
		dir:      dir,
		reserved: make(map[string]struct{}, len(reserved)),
	}
	for _, rel := range reserved {
		o.reserved[rel] = struct{}{}
	}
	return o
}

func (o *outputCounter) write(rel string, data []byte) error {
	if _, ok := o.reserved[rel]; ok {
		return domain.Annotate(domain.ErrOutputCollision, "path", rel)
	}
	changed, err := o.writer.WriteFile(o.dir, rel, data)
	if err != nil {
		return err
	}
	if changed {
		o.written.Add(1)
	} else {
		o.unchanged.Add(1)
	}
	return nil
}
