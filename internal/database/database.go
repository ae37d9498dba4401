package database

import (
	"database/sql"
	"os"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

// Service stores finished match results. The driver is chosen via DB_DRIVER
// ("sqlite3" by default, "pgx" for Postgres) with the DSN in DB_DSN.
type Service struct {
	db        *sql.DB
	m         *sync.Mutex
	tableName string
}

var tableName = "twentynine"

func New() Service {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "./twentynine.db"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		panic(err)
	}

	sqlStmt := `
	create table if not exists twentynine (
		id text not null primary key,
		created_at text,
		room_code text,
		player1 text,
		player2 text,
		player3 text,
		player4 text,
		team_a_score integer,
		team_b_score integer,
		winner_team text
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		panic(err)
	}

	return Service{
		db:        db,
		tableName: tableName,
		m:         &sync.Mutex{},
	}
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.tableName
}

func (s *Service) GetAll() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM " + s.tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.RoomCode,
			&result.Player1,
			&result.Player2,
			&result.Player3,
			&result.Player4,
			&result.TeamAScore,
			&result.TeamBScore,
			&result.WinnerTeam); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) GetByID(id string) (GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result GameResult
	err := s.db.QueryRow("SELECT * FROM "+s.tableName+" WHERE id = $1", id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.RoomCode,
		&result.Player1,
		&result.Player2,
		&result.Player3,
		&result.Player4,
		&result.TeamAScore,
		&result.TeamBScore,
		&result.WinnerTeam)
	if err != nil {
		return GameResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.tableName+
		" (id, created_at, room_code, player1, player2, player3, player4, team_a_score, team_b_score, winner_team) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		result.ID,
		result.CreatedAt,
		result.RoomCode,
		result.Player1,
		result.Player2,
		result.Player3,
		result.Player4,
		result.TeamAScore,
		result.TeamBScore,
		result.WinnerTeam)

	return err
}

func (s *Service) GetByPlayer(playerName string) ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM "+s.tableName+
		" WHERE player1 = $1 OR player2 = $2 OR player3 = $3 OR player4 = $4",
		playerName,
		playerName,
		playerName,
		playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.RoomCode,
			&result.Player1,
			&result.Player2,
			&result.Player3,
			&result.Player4,
			&result.TeamAScore,
			&result.TeamBScore,
			&result.WinnerTeam); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}

	return results, nil
}
