package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeNotion is an in-memory Notion database supporting the calls the sync
// makes: query with an "or" of rich_text equals filters, page update and
// page creation.
type FakeNotion struct {
	DatabaseID string
	Token      string

	mu      sync.Mutex
	pages   []*FakePage
	nextID  int
	queries int
	patches int
	creates int

	// FailStatus, when non-zero, is returned as a Notion error object for
	// every request.
	FailStatus int
}

// FakePage is one stored page.
type FakePage struct {
	ID         string                            `json:"id"`
	Properties map[string]map[string]interface{} `json:"properties"`
}

// Slug returns the plain text of the titleSlug property.
func (p *FakePage) Slug() string { return p.richText("titleSlug", "rich_text") }

// Name returns the plain text of the Name title.
func (p *FakePage) Name() string { return p.richText("Name", "title") }

// LastReviewed returns the start of the Last Reviewed date.
func (p *FakePage) LastReviewed() string {
	date, _ := p.Properties["Last Reviewed"]["date"].(map[string]interface{})
	start, _ := date["start"].(string)
	return start
}

// Select returns the name of the select property prop.
func (p *FakePage) Select(prop string) string {
	sel, _ := p.Properties[prop]["select"].(map[string]interface{})
	name, _ := sel["name"].(string)
	return name
}

func (p *FakePage) richText(prop, kind string) string {
	parts, _ := p.Properties[prop][kind].([]interface{})
	var b strings.Builder
	for _, part := range parts {
		m, _ := part.(map[string]interface{})
		if s, ok := m["plain_text"].(string); ok && s != "" {
			b.WriteString(s)
			continue
		}
		text, _ := m["text"].(map[string]interface{})
		s, _ := text["content"].(string)
		b.WriteString(s)
	}
	return b.String()
}

// NewFakeNotion returns an empty database accepting token.
func NewFakeNotion(databaseID, token string) *FakeNotion {
	return &FakeNotion{DatabaseID: databaseID, Token: token}
}

// AddEntry stores a tracked entry and returns its page id.
func (f *FakeNotion) AddEntry(slug, lastReviewed, stage string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.store(map[string]map[string]interface{}{
		"titleSlug": {"type": "rich_text", "rich_text": []interface{}{
			map[string]interface{}{"type": "text", "plain_text": slug, "text": map[string]interface{}{"content": slug}},
		}},
		"Last Reviewed":  {"type": "date", "date": map[string]interface{}{"start": lastReviewed, "end": nil}},
		"Repetition Gap": {"type": "select", "select": map[string]interface{}{"name": stage}},
	})
}

// Pages returns the stored pages in creation order.
func (f *FakeNotion) Pages() []*FakePage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*FakePage(nil), f.pages...)
}

// Page returns the stored page with id, or nil.
func (f *FakeNotion) Page(id string) *FakePage {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Counts returns how many queries, updates and creations were served.
func (f *FakeNotion) Counts() (queries, patches, creates int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries, f.patches, f.creates
}

// Server starts the fake. It is closed when the test ends. Clients should
// use server.URL + "/v1" as their base URL.
func (f *FakeNotion) Server(t *testing.T) *httptest.Server {
	t.Helper()
	return CreateTestServer(t, http.HandlerFunc(f.serveHTTP))
}

func (f *FakeNotion) store(props map[string]map[string]interface{}) string {
	f.nextID++
	id := fmt.Sprintf("page-%d", f.nextID)
	f.pages = append(f.pages, &FakePage{ID: id, Properties: props})
	return id
}

func (f *FakeNotion) serveHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailStatus != 0 {
		notionError(w, f.FailStatus, "internal_server_error", "injected failure")
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+f.Token {
		notionError(w, http.StatusUnauthorized, "unauthorized", "API token is invalid.")
		return
	}
	if r.Header.Get("Notion-Version") == "" {
		notionError(w, http.StatusBadRequest, "missing_version", "Notion-Version header failed validation.")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1")
	switch {
	case r.Method == http.MethodPost && path == "/databases/"+f.DatabaseID+"/query":
		f.query(w, r)
	case r.Method == http.MethodPost && path == "/pages":
		f.create(w, r)
	case r.Method == http.MethodPatch && strings.HasPrefix(path, "/pages/"):
		f.update(w, r, strings.TrimPrefix(path, "/pages/"))
	default:
		notionError(w, http.StatusNotFound, "object_not_found", "Could not find "+path)
	}
}

func (f *FakeNotion) query(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PageSize int `json:"page_size"`
		Filter   struct {
			Or []struct {
				Property string `json:"property"`
				RichText struct {
					Equals string `json:"equals"`
				} `json:"rich_text"`
			} `json:"or"`
		} `json:"filter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		notionError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	f.queries++

	wanted := make(map[string]bool, len(req.Filter.Or))
	for _, clause := range req.Filter.Or {
		if clause.Property == "titleSlug" {
			wanted[clause.RichText.Equals] = true
		}
	}

	results := []*FakePage{}
	for _, p := range f.pages {
		if wanted[p.Slug()] {
			results = append(results, p)
		}
	}

	hasMore := false
	if req.PageSize > 0 && len(results) > req.PageSize {
		results = results[:req.PageSize]
		hasMore = true
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"object":      "list",
		"results":     results,
		"has_more":    hasMore,
		"next_cursor": nil,
	})
}

func (f *FakeNotion) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Parent struct {
			DatabaseID string `json:"database_id"`
		} `json:"parent"`
		Properties map[string]map[string]interface{} `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		notionError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Parent.DatabaseID != f.DatabaseID {
		notionError(w, http.StatusNotFound, "object_not_found", "Could not find database "+req.Parent.DatabaseID)
		return
	}
	f.creates++

	id := f.store(req.Properties)
	writeJSON(w, http.StatusOK, map[string]interface{}{"object": "page", "id": id})
}

func (f *FakeNotion) update(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Properties map[string]map[string]interface{} `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		notionError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	for _, p := range f.pages {
		if p.ID != id {
			continue
		}
		f.patches++
		for name, value := range req.Properties {
			p.Properties[name] = value
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"object": "page", "id": id})
		return
	}
	notionError(w, http.StatusNotFound, "object_not_found", "Could not find page "+id)
}

func notionError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"object":  "error",
		"status":  status,
		"code":    code,
		"message": message,
	})
}
