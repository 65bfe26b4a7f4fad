package blog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader reads and caches the blog content directory. Documents with broken
// front-matter are skipped with a warning; a missing directory yields an
// empty blog, never a failure.
type Loader struct {
	dir      string
	markdown goldmark.Markdown

	mu     sync.RWMutex
	posts  []Post
	bySlug map[string]Post

	reloadGroup singleflight.Group
}

func NewLoader(dir string) *Loader {
	return &Loader{
		dir:      dir,
		markdown: goldmark.New(),
		bySlug:   make(map[string]Post),
	}
}

// Load scans the content directory and replaces the cached post set.
// Files are parsed concurrently.
func (l *Loader) Load(ctx context.Context) error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("blog directory does not exist", "dir", l.dir)
			l.swap(nil)
			return nil
		}
		return err
	}

	var (
		g, _   = errgroup.WithContext(ctx)
		postMu sync.Mutex
		posts  []Post
	)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := entry.Name()
		g.Go(func() error {
			slug := strings.TrimSuffix(name, ".md")
			post, err := parsePostFile(l.markdown, filepath.Join(l.dir, name), slug)
			if err != nil {
				log.Warn("skipping blog document", "file", name, "error", err)
				return nil
			}
			postMu.Lock()
			posts = append(posts, post)
			postMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})

	l.swap(posts)
	log.Debug("blog loaded", "posts", len(posts))
	return nil
}

// Reload collapses concurrent refreshes into a single directory scan.
func (l *Loader) Reload(ctx context.Context) error {
	_, err, _ := l.reloadGroup.Do("reload", func() (any, error) {
		return nil, l.Load(ctx)
	})
	return err
}

func (l *Loader) swap(posts []Post) {
	bySlug := make(map[string]Post, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = p
	}

	l.mu.Lock()
	l.posts = posts
	l.bySlug = bySlug
	l.mu.Unlock()
}

// Posts returns the cached set, newest first, without rendered bodies.
func (l *Loader) Posts() []Post {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Post, len(l.posts))
	for i, p := range l.posts {
		p.HTML = ""
		out[i] = p
	}
	return out
}

// Get returns the full post for a slug, including the rendered body.
func (l *Loader) Get(slug string) (Post, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	post, ok := l.bySlug[slug]
	return post, ok
}

// Related picks up to n other posts from the same category, newest first.
func (l *Loader) Related(post Post, n int) []Post {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var related []Post
	for _, candidate := range l.posts {
		if len(related) == n {
			break
		}
		if candidate.Slug == post.Slug || candidate.Category != post.Category {
			continue
		}
		candidate.HTML = ""
		related = append(related, candidate)
	}
	return related
}
