package leetcode

import "encoding/json"

// graphqlRequest is the POST body sent to the endpoint.
type graphqlRequest struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

// graphqlResponse is the envelope of every response.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type recentSubmissionsData struct {
	RecentAcSubmissionList []submissionSchema `json:"recentAcSubmissionList"`
}

type submissionSchema struct {
	TitleSlug string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
}

type questionData struct {
	Question *questionSchema `json:"question"`
}

type questionSchema struct {
	QuestionID string `json:"questionId"`
	Title      string `json:"title"`
	TitleSlug  string `json:"titleSlug"`
	Difficulty string `json:"difficulty"`
	// SimilarQuestions is itself a JSON-encoded array.
	SimilarQuestions string     `json:"similarQuestions"`
	TopicTags        []topicTag `json:"topicTags"`
}

type topicTag struct {
	Name string `json:"name"`
}
