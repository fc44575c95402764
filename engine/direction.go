package engine

// Direction is a discrete player movement command
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionUp
	DirectionRight
	DirectionDown
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionLeft:  "left",
	DirectionUp:    "up",
	DirectionRight: "right",
	DirectionDown:  "down",
}

// String returns the command name
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}
