package tower

// Side is where a piece carries its chopsticks, or where the character stands
type Side int

const (
	Left Side = iota
	Right
	None
)

var sideName = map[Side]string{
	Left:  "left",
	Right: "right",
	None:  "none",
}

func (s Side) String() string {
	if name, ok := sideName[s]; ok {
		return name
	}
	return "unknown"
}

// Opposite mirrors Left and Right; None stays None
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Resolved reports whether the side is one a character can stand on
func (s Side) Resolved() bool {
	return s == Left || s == Right
}

// Color is the tint tag carried by pieces and the character
type Color int

const (
	ColorPlain Color = iota
	ColorBonus
	ColorFailure
)

func (c Color) String() string {
	switch c {
	case ColorPlain:
		return "plain"
	case ColorBonus:
		return "bonus"
	case ColorFailure:
		return "failure"
	default:
		return "unknown"
	}
}
