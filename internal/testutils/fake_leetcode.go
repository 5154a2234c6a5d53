package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// FakeLeetCode serves the two GraphQL operations the sync uses from
// in-memory data.
type FakeLeetCode struct {
	mu          sync.Mutex
	submissions []fakeSubmission
	problems    map[string]fakeProblem
	operations  []string

	// FailStatus, when non-zero, is returned for every request.
	FailStatus int
}

type fakeSubmission struct {
	Slug      string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
}

type fakeProblem struct {
	QuestionID       string `json:"questionId"`
	Title            string `json:"title"`
	TitleSlug        string `json:"titleSlug"`
	Difficulty       string `json:"difficulty"`
	SimilarQuestions string `json:"similarQuestions"`
	TopicTags        []struct {
		Name string `json:"name"`
	} `json:"topicTags"`
}

// NewFakeLeetCode returns a fake with no submissions.
func NewFakeLeetCode() *FakeLeetCode {
	return &FakeLeetCode{problems: make(map[string]fakeProblem)}
}

// AddSubmission appends an accepted submission. Add them newest first, the
// order the endpoint reports them in.
func (f *FakeLeetCode) AddSubmission(slug string, unixSeconds int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, fakeSubmission{
		Slug:      slug,
		Timestamp: strconv.FormatInt(unixSeconds, 10),
	})
}

// AddProblem registers question metadata for slug.
func (f *FakeLeetCode) AddProblem(slug, id, title, difficulty string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.problems[slug] = fakeProblem{
		QuestionID:       id,
		Title:            title,
		TitleSlug:        slug,
		Difficulty:       difficulty,
		SimilarQuestions: "[]",
	}
}

// Operations returns the GraphQL operation names received so far.
func (f *FakeLeetCode) Operations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.operations...)
}

// Server starts the fake. It is closed when the test ends.
func (f *FakeLeetCode) Server(t *testing.T) *httptest.Server {
	t.Helper()
	return CreateTestServer(t, http.HandlerFunc(f.serveHTTP))
}

func (f *FakeLeetCode) serveHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req struct {
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.operations = append(f.operations, req.OperationName)

	if f.FailStatus != 0 {
		http.Error(w, http.StatusText(f.FailStatus), f.FailStatus)
		return
	}

	var data interface{}
	switch req.OperationName {
	case "recentAcSubmissions":
		limit := len(f.submissions)
		if v, ok := req.Variables["limit"].(float64); ok && int(v) < limit {
			limit = int(v)
		}
		data = map[string]interface{}{"recentAcSubmissionList": f.submissions[:limit]}
	case "questionData":
		slug, _ := req.Variables["titleSlug"].(string)
		if p, ok := f.problems[slug]; ok {
			data = map[string]interface{}{"question": p}
		} else {
			data = map[string]interface{}{"question": nil}
		}
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"errors": []map[string]string{{"message": "unknown operation " + req.OperationName}},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
