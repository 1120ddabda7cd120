package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

type stubFetcher struct {
	calls atomic.Int64
	docs  map[string][]byte
	err   error
}

func (f *stubFetcher) Fetch(_ context.Context, p string) ([]byte, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[p]
	if !ok {
		return nil, os.ErrNotExist
	}
	return doc, nil
}

func TestStoreLoadCoalesces(t *testing.T) {
	f := &stubFetcher{docs: map[string][]byte{
		"content/blog/en/index.json": []byte(`{"posts": [{"slug": "a", "lang": "en", "status": "published"}]}`),
	}}
	s := NewStore(f)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := s.Load(context.Background(), CollectionBlog, "en")
			if err != nil {
				t.Errorf("load: %v", err)
				return
			}
			if len(doc.Posts) != 1 {
				t.Errorf("unexpected doc %+v", doc)
			}
		}()
	}
	wg.Wait()

	if n := f.calls.Load(); n != 1 {
		t.Fatalf("expected one fetch, got %d", n)
	}
}

func TestStoreNormalizesLanguageKey(t *testing.T) {
	f := &stubFetcher{docs: map[string][]byte{
		"content/blog/en/index.json": []byte(`{"posts": []}`),
	}}
	s := NewStore(f)

	for _, lang := range []string{"en", "EN", " en "} {
		if _, err := s.Load(context.Background(), CollectionBlog, lang); err != nil {
			t.Fatalf("load %q: %v", lang, err)
		}
	}
	if n := f.calls.Load(); n != 1 {
		t.Fatalf("expected one fetch for equivalent keys, got %d", n)
	}
}

func TestStoreCachesFailures(t *testing.T) {
	f := &stubFetcher{err: errors.New("origin down")}
	s := NewStore(f)

	if _, err := s.Load(context.Background(), CollectionBlog, "en"); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := s.Load(context.Background(), CollectionBlog, "en"); err == nil {
		t.Fatalf("expected cached error")
	}
	if n := f.calls.Load(); n != 1 {
		t.Fatalf("failure should not be retried, got %d fetches", n)
	}
}

func TestStoreCancelledWaiterDoesNotPoisonCache(t *testing.T) {
	f := &stubFetcher{docs: map[string][]byte{
		"content/news/en/index.json": []byte(`{"posts": []}`),
	}}
	s := NewStore(f)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Load(cancelled, CollectionNews, "en"); err == nil {
		t.Fatalf("expected context error")
	}

	doc, err := s.Load(context.Background(), CollectionNews, "en")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if doc == nil {
		t.Fatalf("expected document")
	}
}

func TestStorePostsFiltersAndSorts(t *testing.T) {
	f := &stubFetcher{docs: map[string][]byte{
		"content/blog/en/index.json": []byte(`{"posts": [
			{"slug": "old", "lang": "en", "status": "published", "date": "2026-01-01"},
			{"slug": "draft", "lang": "en", "status": "draft", "date": "2026-06-01"},
			{"slug": "es", "lang": "es", "status": "published", "date": "2026-06-01"},
			{"slug": "new", "lang": "en", "status": "published", "date": "2026-05-01"}
		]}`),
	}}
	s := NewStore(f)

	posts, err := s.Posts(context.Background(), CollectionBlog, "en")
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "new" || posts[1].Slug != "old" {
		t.Fatalf("unexpected posts %+v", posts)
	}
}

func TestStoreAlbums(t *testing.T) {
	f := &stubFetcher{docs: map[string][]byte{
		"content/gallery/ja/index.json": []byte(`{"albums": [
			{"slug": "a", "lang": "ja", "status": "published", "images": ["1.jpg", "2.jpg"]}
		]}`),
	}}
	s := NewStore(f)

	albums, err := s.Albums(context.Background(), "ja")
	if err != nil {
		t.Fatalf("albums: %v", err)
	}
	if len(albums) != 1 || len(albums[0].Images) != 2 {
		t.Fatalf("unexpected albums %+v", albums)
	}
}

func TestStoreDecodeError(t *testing.T) {
	f := &stubFetcher{docs: map[string][]byte{
		"content/blog/en/index.json": []byte(`{{`),
	}}
	s := NewStore(f)
	if _, err := s.Load(context.Background(), CollectionBlog, "en"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDirFetcher(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "content", "blog", "en")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.json"), []byte(`{"posts": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := NewDir(root)
	raw, err := d.Fetch(context.Background(), "content/blog/en/index.json")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(raw) != `{"posts": []}` {
		t.Fatalf("unexpected content %q", raw)
	}

	// traversal is cleaned to a root-relative path, never escaping root
	if _, err := d.Fetch(context.Background(), "../../../etc/passwd"); err == nil {
		t.Fatalf("expected error for cleaned traversal path")
	}
}
