package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Side is the orientation of a wall relative to the cell it is addressed from.
type Side int

const (
	Left Side = iota
	Top
	Right
	Bottom
)

// Sides lists the four raw sides in storage-friendly order.
var Sides = [...]Side{Left, Top, Right, Bottom}

var ErrUnknownSide = errors.New("unknown side")

var sideNames = map[Side]string{
	Left:   "left",
	Top:    "top",
	Right:  "right",
	Bottom: "bottom",
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide converts a case-insensitive side name into a Side.
func ParseSide(name string) (Side, error) {
	for side, sideName := range sideNames {
		if strings.EqualFold(name, sideName) {
			return side, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// valid reports whether s is one of the four declared sides.
func (s Side) valid() bool {
	return s >= Left && s <= Bottom
}
