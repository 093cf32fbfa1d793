package state

// Direction is one of the four edges a viewport can scroll toward.
type Direction int

const (
    Up Direction = iota
    Left
    Right
    Down
)

// Directions lists every direction in stable display order.
var Directions = [4]Direction{Up, Left, Right, Down}

func (d Direction) String() string {
    switch d {
    case Up:
        return "up"
    case Left:
        return "left"
    case Right:
        return "right"
    case Down:
        return "down"
    default:
        return "unknown"
    }
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
    return d >= Up && d <= Down
}

// ParseDirection maps "up", "left", "right" or "down" to a Direction.
func ParseDirection(s string) (Direction, bool) {
    for _, d := range Directions {
        if d.String() == s {
            return d, true
        }
    }
    return 0, false
}
