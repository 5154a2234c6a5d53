// Package leetcode implements store.SubmissionSource against the LeetCode
// GraphQL endpoint. It issues two fixed queries over HTTP POST: the user's
// recent accepted submissions and the detail of a single problem.
package leetcode
