package services

import (
	"context"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
)

// TeamService manages teams and their weekly rosters.
type TeamService struct {
	teamRepo   repositories.TeamRepository
	leagueRepo repositories.LeagueRepository
	rosterRepo repositories.RosterRepository
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	leagueRepo repositories.LeagueRepository,
	rosterRepo repositories.RosterRepository,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, userID int, input schemas.TeamCreate) (*models.Team, error) {
	if _, err := s.leagueRepo.GetByID(ctx, input.LeagueID); err != nil {
		return nil, translateRepositoryError(err)
	}

	team := input.ToModel(userID)
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, translateRepositoryError(err)
	}
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return team, nil
}

func (s *TeamService) ListUserTeams(ctx context.Context, userID int) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for user: %w", err)
	}
	return teams, nil
}

// ownedTeam loads the team and checks that userID owns it.
func (s *TeamService) ownedTeam(ctx context.Context, userID, teamID int) (*models.Team, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.UserID != userID {
		return nil, ErrNotTeamOwner
	}
	return team, nil
}

func (s *TeamService) AddRosterEntry(ctx context.Context, userID int, input schemas.RosterCreate) (*models.Roster, error) {
	if _, err := s.ownedTeam(ctx, userID, input.TeamID); err != nil {
		return nil, err
	}

	entry := input.ToModel()
	if err := s.rosterRepo.Create(ctx, nil, entry); err != nil {
		return nil, translateRepositoryError(err)
	}
	return entry, nil
}

func (s *TeamService) GetRoster(ctx context.Context, teamID, week int) ([]models.Roster, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	roster, err := s.rosterRepo.ListByTeamWeek(ctx, teamID, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return roster, nil
}
