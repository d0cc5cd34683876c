package testutils

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
)

// seq keeps fixture usernames, emails and player ids unique across tests
// sharing one database.
var seq atomic.Int64

func next() int64 {
	return seq.Add(1)
}

func NewPlayer(name, position, team string) *models.NFLPlayer {
	return &models.NFLPlayer{
		Name:              name,
		Position:          position,
		NFLTeam:           team,
		GlobalPlayerID:    fmt.Sprintf("ffliq-%d", next()),
		ProviderPlayerIDs: models.ProviderIDs{"sleeper": fmt.Sprintf("%d", next())},
		ActiveFlag:        true,
		SeasonYear:        2024,
	}
}

func JalenHurts() *models.NFLPlayer { return NewPlayer("Jalen Hurts", "QB", "PHI") }

func CeeDeeLamb() *models.NFLPlayer { return NewPlayer("CeeDee Lamb", "WR", "DAL") }

func BreeceHall() *models.NFLPlayer { return NewPlayer("Breece Hall", "RB", "NYJ") }

func (tdb *TestDB) InsertPlayer(t *testing.T, p *models.NFLPlayer) *models.NFLPlayer {
	t.Helper()
	if err := repositories.NewPostgresPlayerRepository(tdb.DB).Create(context.Background(), p); err != nil {
		t.Fatalf("insert player %s: %v", p.Name, err)
	}
	return p
}

func (tdb *TestDB) InsertUser(t *testing.T) *models.User {
	t.Helper()
	n := next()
	u := &models.User{
		Username:       fmt.Sprintf("manager%d", n),
		Email:          fmt.Sprintf("manager%d@example.com", n),
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := repositories.NewPostgresUserRepository(tdb.DB).Create(context.Background(), u); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return u
}

func (tdb *TestDB) InsertLeague(t *testing.T, creatorID int, settings models.JSONMap) *models.League {
	t.Helper()
	l := &models.League{
		Name:        fmt.Sprintf("League %d", next()),
		SeasonYear:  2024,
		Settings:    settings,
		CreatedByID: creatorID,
	}
	if err := repositories.NewPostgresLeagueRepository(tdb.DB).Create(context.Background(), l); err != nil {
		t.Fatalf("insert league: %v", err)
	}
	return l
}

func (tdb *TestDB) InsertTeam(t *testing.T, userID, leagueID int) *models.Team {
	t.Helper()
	team := &models.Team{
		Name:     fmt.Sprintf("Team %d", next()),
		UserID:   userID,
		LeagueID: leagueID,
	}
	if err := repositories.NewPostgresTeamRepository(tdb.DB).Create(context.Background(), team); err != nil {
		t.Fatalf("insert team: %v", err)
	}
	return team
}
