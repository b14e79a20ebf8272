package filter

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/BangKartavya/evently/internal/repository"
	"github.com/BangKartavya/evently/internal/service"
)

func waitReady(t *testing.T, f *CategoryFilter) {
	t.Helper()
	select {
	case <-f.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("filter never became ready")
	}
}

func TestCategoryFilterLoad(t *testing.T) {
	t.Run("offers loaded categories after the permanent option", func(t *testing.T) {
		repo := repository.NewMockCategoryRepository()
		svc := service.NewCategoryService(repo)
		ctx := context.Background()
		for _, name := range []string{"Music", "Art"} {
			if _, err := svc.CreateCategory(ctx, name); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		f := NewCategoryFilter(svc)
		f.Load(ctx)
		waitReady(t, f)

		options := f.Options()
		if len(options) != 3 {
			t.Fatalf("expected 3 options, got %v", options)
		}
		if options[0] != AllCategories {
			t.Errorf("expected %q first, got %q", AllCategories, options[0])
		}
		if options[1] != "Art" || options[2] != "Music" {
			t.Errorf("expected name-ordered categories, got %v", options[1:])
		}
	})

	t.Run("load failure leaves only the permanent option", func(t *testing.T) {
		repo := repository.NewMockCategoryRepository()
		repo.ShouldFail = true

		f := NewCategoryFilter(service.NewCategoryService(repo))
		f.Load(context.Background())
		waitReady(t, f)

		options := f.Options()
		if len(options) != 1 || options[0] != AllCategories {
			t.Errorf("expected only %q, got %v", AllCategories, options)
		}
	})

	t.Run("load runs once", func(t *testing.T) {
		repo := repository.NewMockCategoryRepository()
		svc := service.NewCategoryService(repo)
		ctx := context.Background()

		f := NewCategoryFilter(svc)
		f.Load(ctx)
		waitReady(t, f)

		// A later Load after seeding must not rerun the fetch
		if _, err := svc.CreateCategory(ctx, "Late"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		f.Load(ctx)

		if options := f.Options(); len(options) != 1 {
			t.Errorf("expected the first load's result kept, got %v", options)
		}
	})
}

func TestRewrite(t *testing.T) {
	base := url.Values{"query": {"gophers"}, "page": {"2"}}.Encode()

	t.Run("selection upserts the category key", func(t *testing.T) {
		got := Rewrite(base, "Music")
		parsed, err := url.ParseQuery(got)
		if err != nil {
			t.Fatalf("rewrite produced an unparseable query: %v", err)
		}
		if parsed.Get("category") != "Music" {
			t.Errorf("expected category=Music, got %q", parsed.Get("category"))
		}
		if parsed.Get("query") != "gophers" {
			t.Errorf("expected other keys preserved, got %q", parsed.Get("query"))
		}
	})

	t.Run("permanent option removes the category key", func(t *testing.T) {
		withCategory := Rewrite(base, "Music")
		got := Rewrite(withCategory, AllCategories)
		parsed, _ := url.ParseQuery(got)
		if parsed.Has("category") {
			t.Errorf("expected category removed, got %q", got)
		}
		if parsed.Get("page") != "2" {
			t.Error("expected other keys preserved")
		}
	})

	t.Run("reselecting replaces rather than appends", func(t *testing.T) {
		got := Rewrite(Rewrite(base, "Music"), "Art")
		parsed, _ := url.ParseQuery(got)
		if len(parsed["category"]) != 1 || parsed.Get("category") != "Art" {
			t.Errorf("expected a single category=Art, got %v", parsed["category"])
		}
	})
}
