package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/turma-roster/internal/domain/group"
	"github.com/riskibarqy/turma-roster/internal/domain/player"
	"github.com/riskibarqy/turma-roster/internal/platform/logging"
)

const defaultSummaryWorkers = 4

type GroupService struct {
	groupRepo      group.Repository
	playerRepo     player.Repository
	logger         *logging.Logger
	summaryWorkers int
}

// GroupSummary is a group card: its name and how many players each team has.
type GroupSummary struct {
	Name         string
	PlayerCount  int
	CountsByTeam map[player.Team]int
}

func NewGroupService(groupRepo group.Repository, playerRepo player.Repository, logger *logging.Logger, summaryWorkers int) *GroupService {
	if logger == nil {
		logger = logging.Default()
	}
	if summaryWorkers < 1 {
		summaryWorkers = defaultSummaryWorkers
	}

	return &GroupService{
		groupRepo:      groupRepo,
		playerRepo:     playerRepo,
		logger:         logger,
		summaryWorkers: summaryWorkers,
	}
}

func (s *GroupService) ListGroups(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListGroups")
	defer span.End()

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return groups, nil
}

func (s *GroupService) CreateGroup(ctx context.Context, name string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.CreateGroup")
	defer span.End()

	name, err := normalizeName(name, "Informe o nome da turma.")
	if err != nil {
		return "", err
	}

	if err := s.groupRepo.Add(ctx, name); err != nil {
		return "", fmt.Errorf("add group: %w", err)
	}

	s.logger.InfoContext(ctx, "group created", "group", name)
	return name, nil
}

// RemoveGroup deletes the group and its roster.
func (s *GroupService) RemoveGroup(ctx context.Context, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.RemoveGroup")
	defer span.End()

	name, err := normalizeName(name, "group name is required")
	if err != nil {
		return err
	}
	if err := ensureGroupExists(ctx, s.groupRepo, name); err != nil {
		return err
	}

	if err := s.groupRepo.Remove(ctx, name); err != nil {
		return fmt.Errorf("remove group: %w", err)
	}

	s.logger.InfoContext(ctx, "group removed", "group", name)
	return nil
}

// ListGroupSummaries loads every roster with a bounded worker pool and returns
// summaries in stored group order. The first roster failure fails the call.
func (s *GroupService) ListGroupSummaries(ctx context.Context) ([]GroupSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListGroupSummaries")
	defer span.End()

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if len(groups) == 0 {
		return []GroupSummary{}, nil
	}

	pool, err := ants.NewPool(min(s.summaryWorkers, len(groups)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	summaries := make([]GroupSummary, len(groups))
	errs := make([]error, len(groups))

	var workers sync.WaitGroup
	for i, name := range groups {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			players, err := s.playerRepo.ListByGroup(ctx, name)
			if err != nil {
				errs[i] = fmt.Errorf("list players of group %q: %w", name, err)
				return
			}
			summaries[i] = GroupSummary{
				Name:         name,
				PlayerCount:  len(players),
				CountsByTeam: player.CountByTeam(players),
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return summaries, nil
}

func ensureGroupExists(ctx context.Context, repo group.Repository, name string) error {
	groups, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}
	if !slices.Contains(groups, name) {
		return fmt.Errorf("%w: group=%s", ErrNotFound, name)
	}
	return nil
}
