package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func eventBlock(name, id string) string {
	return fmt.Sprintf(`<script type="application/ld+json">[{"@type":"MusicEvent","name":%q,"startDate":"2025-09-06T19:30:00","url":"https://www.ticketmaster.com/event/%s"}]</script>`, name, id)
}

func TestFetchPage(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html>ok</html>")
	}))
	defer srv.Close()

	s := NewWithOptions(srv.URL, 5*time.Second, 1)
	html, err := s.FetchPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if html != "<html>ok</html>" {
		t.Errorf("unexpected body: %q", html)
	}
	if gotUA != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, gotUA)
	}
}

func TestFetchPageNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "go away", http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewWithOptions(srv.URL, 5*time.Second, 1)
	if _, err := s.FetchPage(context.Background(), 0); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestFetchAllPaginates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "0":
			fmt.Fprint(w, `<html><head>`+eventBlock("First Show", "AAA")+`</head><body><a rel="next" href="?page=1">next</a></body></html>`)
		case "1":
			// Repeats the first event; also carries a new one. No next link.
			fmt.Fprint(w, `<html><head>`+eventBlock("First Show", "AAA")+eventBlock("Second Show", "BBB")+`</head></html>`)
		default:
			t.Errorf("unexpected page request: %s", r.URL.String())
		}
	}))
	defer srv.Close()

	s := NewWithOptions(srv.URL, 5*time.Second, 10)
	raws, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(raws) != 2 {
		t.Fatalf("expected 2 unique events across pages, got %d", len(raws))
	}
	if raws[0].Name != "First Show" || raws[1].Name != "Second Show" {
		t.Errorf("unexpected events: %q, %q", raws[0].Name, raws[1].Name)
	}
}

func TestFetchAllFirstPageFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewWithOptions(srv.URL, 5*time.Second, 10)
	if _, err := s.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error when first page fetch fails")
	}
}

func TestFetchAllLaterPageFailureKeepsEarlierPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `<html><head>`+eventBlock("Only Show", "AAA")+`</head><body><a rel="next" href="?page=1">next</a></body></html>`)
	}))
	defer srv.Close()

	s := NewWithOptions(srv.URL, 5*time.Second, 10)
	raws, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll should tolerate later-page failures, got %v", err)
	}
	if len(raws) != 1 || raws[0].Name != "Only Show" {
		t.Errorf("expected the first page's event to survive, got %v", raws)
	}
}

func TestFetchAllStopsWithoutNextLink(t *testing.T) {
	var pages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		fmt.Fprint(w, `<html><head>`+eventBlock("Solo", "AAA")+`</head></html>`)
	}))
	defer srv.Close()

	s := NewWithOptions(srv.URL, 5*time.Second, 10)
	if _, err := s.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("expected a single page fetch, got %d", pages)
	}
}
