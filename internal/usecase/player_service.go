package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/turma-roster/internal/domain/group"
	"github.com/riskibarqy/turma-roster/internal/domain/player"
	"github.com/riskibarqy/turma-roster/internal/platform/logging"
)

type PlayerService struct {
	groupRepo  group.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

type AddPlayerInput struct {
	Group string
	Name  string
	Team  string
}

func NewPlayerService(groupRepo group.Repository, playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		groupRepo:  groupRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// ListPlayers returns the roster of a group, narrowed to one team when team is
// not blank.
func (s *PlayerService) ListPlayers(ctx context.Context, groupName, team string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	groupName, err := normalizeName(groupName, "group name is required")
	if err != nil {
		return nil, err
	}
	if err := ensureGroupExists(ctx, s.groupRepo, groupName); err != nil {
		return nil, err
	}

	if strings.TrimSpace(team) == "" {
		players, err := s.playerRepo.ListByGroup(ctx, groupName)
		if err != nil {
			return nil, fmt.Errorf("list players by group: %w", err)
		}
		return players, nil
	}

	parsed, err := player.ParseTeam(team)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	players, err := s.playerRepo.ListByGroupAndTeam(ctx, groupName, parsed)
	if err != nil {
		return nil, fmt.Errorf("list players by group and team: %w", err)
	}

	return players, nil
}

func (s *PlayerService) AddPlayer(ctx context.Context, input AddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer")
	defer span.End()

	groupName, err := normalizeName(input.Group, "group name is required")
	if err != nil {
		return player.Player{}, err
	}

	name, err := normalizeName(input.Name, "Informe o nome da pessoa a adicionar.")
	if err != nil {
		return player.Player{}, err
	}

	team, err := player.ParseTeam(input.Team)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := player.Player{Name: name, Team: team}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := ensureGroupExists(ctx, s.groupRepo, groupName); err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.Add(ctx, item, groupName); err != nil {
		return player.Player{}, fmt.Errorf("add player to group: %w", err)
	}

	s.logger.InfoContext(ctx, "player added", "group", groupName, "player", name, "team", team)
	return item, nil
}

// RemovePlayer is a no-op when the player is not in the group.
func (s *PlayerService) RemovePlayer(ctx context.Context, groupName, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RemovePlayer")
	defer span.End()

	groupName, err := normalizeName(groupName, "group name is required")
	if err != nil {
		return err
	}
	name, err = normalizeName(name, "player name is required")
	if err != nil {
		return err
	}
	if err := ensureGroupExists(ctx, s.groupRepo, groupName); err != nil {
		return err
	}

	if err := s.playerRepo.Remove(ctx, name, groupName); err != nil {
		return fmt.Errorf("remove player from group: %w", err)
	}

	s.logger.InfoContext(ctx, "player removed", "group", groupName, "player", name)
	return nil
}
