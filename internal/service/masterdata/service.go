// Package masterdata carries the create-side rules shared by every master
// entity screen: advisory duplicate detection against the previously fetched
// list and batch creation with per-item outcomes. The backend stays the
// source of truth and may still reject what passes here.
package masterdata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicate marks a name that already exists in the fetched list or
// earlier in the same batch.
var ErrDuplicate = errors.New("duplicate name")

// ErrPartialFailure marks a batch in which at least one create failed.
// Already-succeeded records stay persisted on the backend.
var ErrPartialFailure = errors.New("some records failed to create")

// BatchItem is one row of a batch submission. Create performs the actual
// backend POST for the row.
type BatchItem struct {
	Name   string
	Create func(ctx context.Context) error
}

// ItemResult is the per-row outcome of a batch.
type ItemResult struct {
	Index int
	Name  string
	Err   error
}

// Service applies dedup and batch semantics for master entities.
type Service struct {
	logger *zap.Logger
}

// NewService wires a master-data service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// normalizeName is the duplicate-comparison key: trimmed, case-insensitive.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CheckDuplicate rejects a single new name already present in existing.
func (s *Service) CheckDuplicate(existing []string, name string) error {
	key := normalizeName(name)
	for _, have := range existing {
		if normalizeName(have) == key {
			return fmt.Errorf("%w: %s", ErrDuplicate, strings.TrimSpace(name))
		}
	}
	return nil
}

// CheckBatchDuplicates rejects the whole batch when any row duplicates the
// existing list or another row. Nothing is submitted on rejection.
func (s *Service) CheckBatchDuplicates(existing []string, names []string) error {
	seen := make(map[string]struct{}, len(existing)+len(names))
	for _, have := range existing {
		seen[normalizeName(have)] = struct{}{}
	}

	for _, name := range names {
		key := normalizeName(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicate, strings.TrimSpace(name))
		}
		seen[key] = struct{}{}
	}

	return nil
}

// CreateBatch fires every item's create concurrently and reports a per-item
// outcome. There is no rollback: rows that succeeded before another row
// failed remain on the backend, and the result list says exactly which is
// which. Callers must run CheckBatchDuplicates first.
func (s *Service) CreateBatch(ctx context.Context, items []BatchItem) ([]ItemResult, error) {
	results := make([]ItemResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		results[i] = ItemResult{Index: i, Name: item.Name}
		create := item.Create
		idx := i
		g.Go(func() error {
			if err := create(gctx); err != nil {
				results[idx].Err = err
			}
			// Never abort the group: sibling creates are independent and the
			// caller wants every row's outcome.
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			s.logger.Warn("batch item failed",
				zap.Int("index", r.Index),
				zap.String("name", r.Name),
				zap.Error(r.Err))
		}
	}

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrPartialFailure, failed, len(items))
	}
	return results, nil
}
