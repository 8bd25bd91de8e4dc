package bahar

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"bahar-go/internal/model"
	"bahar-go/internal/providers/common"
)

const (
	baharUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	baharPageLimit = 4
)

// TokenSource supplies a valid session token for authenticated requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Scraper lists open projects from the Bahar platform. Project data sits in
// the JSON payload embedded in the listing page.
type Scraper struct {
	client *http.Client
	base   string
	tokens TokenSource
}

func NewScraper(client *http.Client, baseURL string, tokens TokenSource) *Scraper {
	return &Scraper{client: client, base: strings.TrimSuffix(baseURL, "/"), tokens: tokens}
}

func (s *Scraper) Source() string {
	return "bahar"
}

func (s *Scraper) ListOpenProjects(ctx context.Context) ([]model.ProjectInfo, error) {
	log.Printf("[bahar] page 1")
	firstPage, totalPages, err := s.fetchPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	log.Printf("[bahar] page 1 found %d items (total pages: %d)", len(firstPage), totalPages)
	if totalPages <= 1 {
		return firstPage, nil
	}

	projects := make([]model.ProjectInfo, 0, len(firstPage)*totalPages)
	projects = append(projects, firstPage...)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(baharPageLimit)

	var mu sync.Mutex
	for page := 2; page <= totalPages; page++ {
		page := page
		group.Go(func() error {
			log.Printf("[bahar] page %d/%d", page, totalPages)
			items, _, err := s.fetchPage(gctx, page)
			if err != nil {
				log.Printf("[bahar] failed on page %d: %v", page, err)
				return nil
			}
			log.Printf("[bahar] page %d found %d items", page, len(items))
			mu.Lock()
			projects = append(projects, items...)
			mu.Unlock()
			return nil
		})
	}

	_ = group.Wait()
	return projects, nil
}

func (s *Scraper) fetchPage(ctx context.Context, page int) ([]model.ProjectInfo, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/projects?page=%d&status=open", s.base, page)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", baharUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	if s.tokens != nil {
		token, err := s.tokens.Token(reqCtx)
		if err != nil {
			return nil, 0, fmt.Errorf("session token: %w", err)
		}
		req.AddCookie(&http.Cookie{Name: "SID", Value: token})
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return extractProjects(doc, s.base)
}

func extractProjects(doc *goquery.Document, base string) ([]model.ProjectInfo, int, error) {
	var payload map[string]any
	if err := decodeEmbeddedPayload(doc, &payload); err != nil {
		return nil, 0, fmt.Errorf("json parse error: %w", err)
	}
	if payload == nil {
		return nil, 0, nil
	}

	data := nestedMap(payload, "props", "pageProps", "projects")
	if data == nil {
		return nil, 0, nil
	}

	totalPages := readTotalPages(data)

	list, ok := data["data"].([]any)
	if !ok {
		return nil, totalPages, nil
	}

	projects := make([]model.ProjectInfo, 0, len(list))
	for _, item := range list {
		project, ok := parseProject(item, base)
		if !ok {
			continue
		}
		projects = append(projects, project)
	}

	return projects, totalPages, nil
}

func decodeEmbeddedPayload(doc *goquery.Document, out *map[string]any) error {
	script := doc.Find("script#__NEXT_DATA__").First().Text()
	if script == "" {
		return nil
	}
	decoder := json.NewDecoder(strings.NewReader(script))
	decoder.UseNumber()
	return decoder.Decode(out)
}

func readTotalPages(data map[string]any) int {
	meta := nestedMap(data, "meta", "pagination")
	if meta == nil {
		return 0
	}
	return int(common.ToInt64(meta["total_pages"]))
}

func parseProject(item any, base string) (model.ProjectInfo, bool) {
	p, ok := item.(map[string]any)
	if !ok {
		return model.ProjectInfo{}, false
	}

	id := common.ToString(p["id"])
	if id == "" {
		id = common.ToString(p["uuid"])
	}
	if id == "" {
		return model.ProjectInfo{}, false
	}

	budgetText := common.ToString(p["budget"])
	if budgetText == "" {
		amountMin := common.ToInt64(p["budget_from"])
		amountMax := common.ToInt64(p["budget_to"])
		budgetText = common.FormatBudgetText(amountMin, amountMax)
	}

	project := model.ProjectInfo{
		Source:      "bahar",
		ExternalID:  id,
		Title:       pickTitle(common.ToString(p["title"])),
		Description: common.ToString(p["description"]),
		BudgetText:  budgetText,
		Link:        fmt.Sprintf("%s/projects/%s", base, id),
		Status:      common.ToString(p["status"]),
		PostedAt:    common.ToString(p["published_at"]),
		Skills:      extractSkillNames(p["skills"]),
	}

	if bids, ok := p["offers_count"]; ok {
		b := int(common.ToInt64(bids))
		project.BidsCount = &b
	}

	return project, true
}

func pickTitle(title string) string {
	if title == "" {
		return "بدون عنوان"
	}
	return title
}

func extractSkillNames(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	skills := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				skills = append(skills, v)
			}
		case map[string]any:
			name := common.ToString(v["name"])
			if name == "" {
				name = common.ToString(v["title"])
			}
			if name != "" {
				skills = append(skills, name)
			}
		}
	}
	return skills
}

func nestedMap(root map[string]any, keys ...string) map[string]any {
	current := root
	for _, key := range keys {
		value, ok := current[key]
		if !ok {
			return nil
		}
		child, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		current = child
	}
	return current
}
