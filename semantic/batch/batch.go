// Package batch walks a project directory and runs the semantic extractor
// over every JS/TS/JSX/TSX file it finds, merging the per-file graphs into
// one project-level model.Graph. The walk itself is grounded on
// analyzer/package.go's AnalyzeDir/analyzePackages (an afs.Service walk
// collecting files per directory); the concurrent per-file extraction is
// new, using golang.org/x/sync/errgroup the way the rest of the retrieved
// pack uses it for bounded fan-out.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lexiscope/lexiscope/internal/config"
	"github.com/lexiscope/lexiscope/semantic/event"
	"github.com/lexiscope/lexiscope/semantic/extractor"
	"github.com/lexiscope/lexiscope/semantic/model"
	"github.com/lexiscope/lexiscope/semantic/tsquery"
)

var extensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true,
}

// Project walks root and returns the merged semantic graph of every
// JS/TS/JSX/TSX file found, skipping directories and files per cfg.
func Project(ctx context.Context, fs afs.Service, root string, cfg *config.Config) (*model.Graph, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	files, err := discover(ctx, fs, root, cfg)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	graphs, err := extractAll(ctx, fs, files, cfg)
	if err != nil {
		return nil, err
	}
	return model.Merge(graphs...), nil
}

// discover walks root via fs, collecting URLs of files this package knows
// how to parse.
func discover(ctx context.Context, fs afs.Service, root string, cfg *config.Config) ([]string, error) {
	var files []string
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			if !cfg.Recursive && parent != "" {
				return false, nil
			}
			if cfg.ShouldSkipDir(info.Name()) {
				return false, nil
			}
			return true, nil
		}
		if !extensions[filepath.Ext(info.Name())] {
			return true, nil
		}
		if cfg.SkipTests && config.IsTestFile(info.Name()) {
			return true, nil
		}
		files = append(files, url.Join(baseURL, parent, info.Name()))
		return true, nil
	}
	var onVisit storage.OnVisit = visitor
	if err := fs.Walk(ctx, root, onVisit); err != nil {
		return nil, fmt.Errorf("failed to walk project %s: %w", root, err)
	}
	return files, nil
}

// extractAll runs File over every path concurrently, bounded by
// cfg.Concurrency (defaulting to runtime.GOMAXPROCS) via
// errgroup.SetLimit.
func extractAll(ctx context.Context, fs afs.Service, files []string, cfg *config.Config) ([]*model.Graph, error) {
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	graphs := make([]*model.Graph, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			graph, err := File(gctx, fs, path)
			if err != nil {
				return err
			}
			mu.Lock()
			graphs[i] = graph
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*model.Graph, 0, len(graphs))
	for _, graph := range graphs {
		if graph != nil {
			out = append(out, graph)
		}
	}
	return out, nil
}

// File downloads and extracts a single source file's semantic graph.
func File(ctx context.Context, fs afs.Service, path string) (*model.Graph, error) {
	src, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromSource(path, src)
}

// FromSource extracts the semantic graph of in-memory source, choosing a
// grammar from path's extension.
func FromSource(path string, src []byte) (*model.Graph, error) {
	grammar := tsquery.GrammarForExtension(filepath.Ext(path))

	parser := sitter.NewParser()
	parser.SetLanguage(tsquery.LanguageFor(grammar))

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	root := tsquery.WrapNode(tree.RootNode(), src, grammar)

	var events []event.Event
	for ev := range extractor.SemanticEvents(root) {
		events = append(events, ev)
	}
	g := model.Build(path, events)

	checksum, err := model.Checksum(src)
	if err != nil {
		return nil, fmt.Errorf("failed to checksum %s: %w", path, err)
	}
	g.Checksum = checksum
	return g, nil
}
