package service

import (
	"context"

	"github.com/phrazzld/lcsync/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionSource mocks the store.SubmissionSource interface
type MockSubmissionSource struct {
	mock.Mock
}

func (m *MockSubmissionSource) RecentAcceptedSubmissions(
	ctx context.Context,
	username string,
	limit int,
) ([]domain.Submission, error) {
	args := m.Called(ctx, username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Submission), args.Error(1)
}

func (m *MockSubmissionSource) Problem(ctx context.Context, slug string) (*domain.Problem, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Problem), args.Error(1)
}

func (m *MockSubmissionSource) ProblemURL(slug string) string {
	return "https://leetcode.com/problems/" + slug + "/"
}

// MockEntryStore mocks the store.EntryStore interface
type MockEntryStore struct {
	mock.Mock
}

func (m *MockEntryStore) FindBySlugs(ctx context.Context, slugs []string) ([]domain.TrackedEntry, error) {
	args := m.Called(ctx, slugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrackedEntry), args.Error(1)
}

func (m *MockEntryStore) UpdateReview(
	ctx context.Context,
	pageID string,
	reviewDate string,
	stage domain.Stage,
) error {
	args := m.Called(ctx, pageID, reviewDate, stage)
	return args.Error(0)
}

func (m *MockEntryStore) Create(ctx context.Context, entry *domain.TrackedEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}
