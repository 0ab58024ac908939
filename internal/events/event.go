package events

// MatchEvent is one row of a match's event table. Time is always present in
// mm.ss form; every other field is optional and empty when the report row did
// not carry it.
type MatchEvent struct {
	Time             string
	ScoreUpdate      string
	TeamInitials     string
	Action1          string
	Position         string
	PlayerNumber     string
	PlayerName       string
	Action2          string
	Player2Number    string
	Player2Name      string
	GoalkeeperNumber string
	GoalkeeperName   string
	SectionNumber    int
}
