// Package testutils provides testing utilities shared across packages.
//
// It contains:
//  1. In-memory fakes of the LeetCode GraphQL endpoint and the Notion REST
//     API, served with net/http/httptest
//  2. Helpers for HTTP responses and environment variables
//
// A typical end-to-end test wires the real clients to the fakes:
//
//	lc := testutils.NewFakeLeetCode()
//	lc.AddSubmission("two-sum", 1700000000)
//	lc.AddProblem("two-sum", "1", "Two Sum", "Easy")
//	db := testutils.NewFakeNotion("db-123", "secret_test")
//
//	cfg := testutils.NewTestConfig(lc.Server(t).URL, db.Server(t).URL)
package testutils
