package database

type GameResult struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	RoomCode   string `json:"room_code"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Player3    string `json:"player3"`
	Player4    string `json:"player4"`
	TeamAScore int    `json:"team_a_score"`
	TeamBScore int    `json:"team_b_score"`
	WinnerTeam string `json:"winner_team"`
}
