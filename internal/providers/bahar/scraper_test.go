package bahar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const listingPage = `<html><body>
<script id="__NEXT_DATA__" type="application/json">
{
  "props": {
    "pageProps": {
      "projects": {
        "data": [
          {
            "id": "p-100",
            "title": "تصميم شعار للشركة",
            "description": "شعار احترافي",
            "budget_from": 500,
            "budget_to": 1500,
            "status": "open",
            "published_at": "2024-05-01T10:00:00Z",
            "offers_count": 4,
            "skills": [{"name": "تصميم"}, {"name": "Illustrator"}]
          },
          {
            "uuid": "p-101",
            "title": "",
            "budget": "1000 SAR",
            "status": "open",
            "skills": ["Writing"]
          },
          {
            "title": "missing id, skipped"
          }
        ],
        "meta": {"pagination": {"total_pages": 2}}
      }
    }
  }
}
</script>
</body></html>`

func TestExtractProjects(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingPage))
	if err != nil {
		t.Fatal(err)
	}

	projects, totalPages, err := extractProjects(doc, "https://bahr.sa")
	if err != nil {
		t.Fatalf("extractProjects: %v", err)
	}
	if totalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", totalPages)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}

	first := projects[0]
	if first.ExternalID != "p-100" || first.Title != "تصميم شعار للشركة" {
		t.Fatalf("unexpected first project: %+v", first)
	}
	if first.BudgetText != "من 500 إلى 1,500 ريال" {
		t.Fatalf("budget text = %q", first.BudgetText)
	}
	if first.Link != "https://bahr.sa/projects/p-100" {
		t.Fatalf("link = %q", first.Link)
	}
	if !reflect.DeepEqual(first.Skills, []string{"تصميم", "Illustrator"}) {
		t.Fatalf("skills = %v", first.Skills)
	}
	if first.BidsCount == nil || *first.BidsCount != 4 {
		t.Fatal("expected bids count 4")
	}

	second := projects[1]
	if second.ExternalID != "p-101" {
		t.Fatalf("uuid fallback failed: %+v", second)
	}
	if second.Title != "بدون عنوان" {
		t.Fatalf("empty title should get placeholder, got %q", second.Title)
	}
	if second.BudgetText != "1000 SAR" {
		t.Fatalf("free-text budget lost: %q", second.BudgetText)
	}
}

func TestExtractProjectsEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatal(err)
	}

	projects, totalPages, err := extractProjects(doc, "https://bahr.sa")
	if err != nil {
		t.Fatalf("extractProjects: %v", err)
	}
	if len(projects) != 0 || totalPages != 0 {
		t.Fatalf("expected nothing from an empty page, got %d projects", len(projects))
	}
}

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

func TestListOpenProjectsSendsSession(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("SID"); err == nil {
			gotCookie = cookie.Value
		}
		w.Write([]byte(singlePage))
	}))
	defer server.Close()

	scraper := NewScraper(server.Client(), server.URL, staticToken("tok-1"))
	projects, err := scraper.ListOpenProjects(context.Background())
	if err != nil {
		t.Fatalf("ListOpenProjects: %v", err)
	}
	if gotCookie != "tok-1" {
		t.Fatalf("expected SID cookie, got %q", gotCookie)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
}

const singlePage = `<html><body>
<script id="__NEXT_DATA__" type="application/json">
{"props":{"pageProps":{"projects":{"data":[{"id":"p-1","title":"مشروع"}],"meta":{"pagination":{"total_pages":1}}}}}}
</script>
</body></html>`
