package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lcsync/internal/domain"
	"github.com/phrazzld/lcsync/internal/domain/srs"
	"github.com/phrazzld/lcsync/internal/platform/logger"
	"github.com/phrazzld/lcsync/internal/store"
)

// SyncOptions holds the per-deployment settings of a sync run.
type SyncOptions struct {
	// Username is the account whose accepted submissions are read.
	Username string
	// Limit is the number of recent submissions fetched per run.
	Limit int
	// SourceLabel is written to the Source property of created entries.
	SourceLabel string
	// Location is used to render solve timestamps as review dates.
	// Nil means UTC.
	Location *time.Location
}

// EntryUpdate describes one entry whose review was advanced.
type EntryUpdate struct {
	Slug          string       `json:"slug"`
	PageID        string       `json:"page_id"`
	ReviewDate    string       `json:"review_date"`
	PreviousStage domain.Stage `json:"previous_stage"`
	Stage         domain.Stage `json:"stage"`
	// NextReview is empty once the entry reaches the terminal stage.
	NextReview string `json:"next_review,omitempty"`
}

// EntryCreate describes one entry created for a first-time solve.
type EntryCreate struct {
	Slug       string `json:"slug"`
	PageID     string `json:"page_id"`
	Name       string `json:"name"`
	ReviewDate string `json:"review_date"`
	NextReview string `json:"next_review"`
}

// Result summarizes one sync run.
type Result struct {
	RunID     uuid.UUID     `json:"run_id"`
	Fetched   int           `json:"fetched"`
	Created   []EntryCreate `json:"created"`
	Updated   []EntryUpdate `json:"updated"`
	Unchanged []string      `json:"unchanged"`
}

// SyncService reconciles recent accepted submissions with the tracked-entry
// store.
type SyncService interface {
	// Run performs one sync. Any failure aborts the run; entries written
	// before the failure stay written.
	Run(ctx context.Context) (*Result, error)
}

// syncServiceImpl implements the SyncService interface
type syncServiceImpl struct {
	source  store.SubmissionSource
	entries store.EntryStore
	stages  srs.Service
	opts    SyncOptions
	logger  *slog.Logger
}

// NewSyncService creates a new SyncService.
// It returns an error if any of the required dependencies are nil.
func NewSyncService(
	source store.SubmissionSource,
	entries store.EntryStore,
	stages srs.Service,
	opts SyncOptions,
	logger *slog.Logger,
) (SyncService, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: submission source cannot be nil", domain.ErrValidation)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: entry store cannot be nil", domain.ErrValidation)
	}
	if stages == nil {
		return nil, fmt.Errorf("%w: srs service cannot be nil", domain.ErrValidation)
	}
	if opts.Username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrValidation)
	}
	if opts.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrValidation)
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &syncServiceImpl{
		source:  source,
		entries: entries,
		stages:  stages,
		opts:    opts,
		logger:  logger.With(slog.String("component", "sync_service")),
	}, nil
}

// Run implements SyncService.Run
func (s *syncServiceImpl) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		RunID:     uuid.New(),
		Created:   []EntryCreate{},
		Updated:   []EntryUpdate{},
		Unchanged: []string{},
	}

	log := s.logger.With(slog.String("run_id", result.RunID.String()))
	ctx = logger.WithLogger(ctx, log)
	started := time.Now()

	log.InfoContext(ctx, "starting sync",
		slog.String("username", s.opts.Username),
		slog.Int("limit", s.opts.Limit))

	submissions, err := s.source.RecentAcceptedSubmissions(ctx, s.opts.Username, s.opts.Limit)
	if err != nil {
		return nil, newSyncError("fetch submissions", "", err)
	}
	result.Fetched = len(submissions)

	ws := newWorkingSet(submissions, s.opts.Location)
	if ws.len() == 0 {
		log.InfoContext(ctx, "no accepted submissions, nothing to sync")
		return result, nil
	}

	stored, err := s.entries.FindBySlugs(ctx, ws.order)
	if err != nil {
		return nil, newSyncError("query entries", "", err)
	}

	matched := make(map[string]bool, len(stored))
	for _, entry := range stored {
		if err := s.reconcile(ctx, ws, entry, matched, result); err != nil {
			return nil, err
		}
	}

	for _, slug := range ws.order {
		if matched[slug] {
			continue
		}
		created, err := s.create(ctx, slug, ws.dates[slug])
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, created)
	}

	log.InfoContext(ctx, "sync completed",
		slog.Int("fetched", result.Fetched),
		slog.Int("distinct", ws.len()),
		slog.Int("created", len(result.Created)),
		slog.Int("updated", len(result.Updated)),
		slog.Int("unchanged", len(result.Unchanged)),
		slog.Duration("duration", time.Since(started)))

	return result, nil
}

// reconcile advances entry when its stored review date differs from the
// latest solve date.
func (s *syncServiceImpl) reconcile(
	ctx context.Context,
	ws workingSet,
	entry domain.TrackedEntry,
	matched map[string]bool,
	result *Result,
) error {
	log := logger.FromContext(ctx)

	date, ok := ws.dates[entry.Slug]
	if !ok {
		return newSyncError("match entries", entry.Slug,
			fmt.Errorf("%w: page %s", ErrUnexpectedSlug, entry.PageID))
	}
	if matched[entry.Slug] {
		log.WarnContext(ctx, "multiple tracked entries share a slug",
			slog.String("slug", entry.Slug),
			slog.String("page_id", entry.PageID))
	}
	matched[entry.Slug] = true

	if entry.LastReviewed == date {
		log.DebugContext(ctx, "review date unchanged",
			slog.String("slug", entry.Slug),
			slog.String("review_date", date))
		result.Unchanged = append(result.Unchanged, entry.Slug)
		return nil
	}

	next, err := s.stages.NextStage(entry.Stage)
	if err != nil {
		return newSyncError("advance stage", entry.Slug, err)
	}

	if err := s.entries.UpdateReview(ctx, entry.PageID, date, next); err != nil {
		return newSyncError("update entry", entry.Slug, err)
	}

	nextReview, _ := s.stages.DueDate(date, next)

	log.InfoContext(ctx, "advanced tracked entry",
		slog.String("slug", entry.Slug),
		slog.String("page_id", entry.PageID),
		slog.String("previous_date", entry.LastReviewed),
		slog.String("review_date", date),
		slog.String("previous_stage", entry.Stage.String()),
		slog.String("stage", next.String()),
		slog.String("next_review", nextReview))

	result.Updated = append(result.Updated, EntryUpdate{
		Slug:          entry.Slug,
		PageID:        entry.PageID,
		ReviewDate:    date,
		PreviousStage: entry.Stage,
		Stage:         next,
		NextReview:    nextReview,
	})
	return nil
}

// create tracks a problem solved for the first time.
func (s *syncServiceImpl) create(ctx context.Context, slug, date string) (EntryCreate, error) {
	log := logger.FromContext(ctx)

	problem, err := s.source.Problem(ctx, slug)
	if err != nil {
		return EntryCreate{}, newSyncError("fetch problem", slug, err)
	}

	entry, err := domain.NewTrackedEntry(problem, date, s.opts.SourceLabel, s.source.ProblemURL(slug))
	if err != nil {
		return EntryCreate{}, newSyncError("build entry", slug, err)
	}
	entry.Slug = slug

	pageID, err := s.entries.Create(ctx, entry)
	if err != nil {
		return EntryCreate{}, newSyncError("create entry", slug, err)
	}

	nextReview, _ := s.stages.DueDate(date, entry.Stage)

	log.InfoContext(ctx, "created tracked entry",
		slog.String("slug", slug),
		slog.String("page_id", pageID),
		slog.String("name", entry.Name),
		slog.String("review_date", date),
		slog.String("next_review", nextReview))

	return EntryCreate{
		Slug:       slug,
		PageID:     pageID,
		Name:       entry.Name,
		ReviewDate: date,
		NextReview: nextReview,
	}, nil
}
