package models

// PlayingPosition matches the values persisted in the players collection.
type PlayingPosition string

const (
	PositionGoalkeeper PlayingPosition = "Goalkeeper"
	PositionDefender   PlayingPosition = "Defender"
	PositionMidfielder PlayingPosition = "Midfielder"
	PositionForward    PlayingPosition = "Forward"
)

func (p PlayingPosition) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

type Player struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Position     PlayingPosition `json:"position"`
	JerseyNumber int             `json:"jerseyNumber"`
	Mobile       string          `json:"mobile,omitempty"`
	Photo        string          `json:"photo,omitempty"`
}
