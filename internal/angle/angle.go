// Package angle parses user angles, converts between degrees and radians, and
// maps angles onto the [-2π, 2π) plotting window.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects how angle text is interpreted
type Mode int

const (
	Degrees Mode = iota
	Radians
)

// String returns the mode name
func (m Mode) String() string {
	if m == Radians {
		return "radians"
	}
	return "degrees"
}

// Unit returns the short unit suffix used in result headings
func (m Mode) Unit() string {
	if m == Radians {
		return "rad"
	}
	return "°"
}

// ModeFromRadianFlag maps the radian toggle onto a Mode
func ModeFromRadianFlag(radians bool) Mode {
	if radians {
		return Radians
	}
	return Degrees
}

// ErrInvalidAngle is matched by every InputError
var ErrInvalidAngle = errors.New("invalid angle input")

// InvalidAngleMessage is the user-facing text for an unparsable angle
const InvalidAngleMessage = "please enter a valid angle value"

// InputError reports angle text that does not parse to a finite number
type InputError struct {
	Text   string
	Reason string
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid angle %q: %s", e.Text, e.Reason)
}

// Is lets errors.Is match ErrInvalidAngle
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidAngle
}

// Input is the raw angle text plus its interpretation
type Input struct {
	Text string
	Mode Mode
}

// Radians parses the input and converts it to radians
func (in Input) Radians() (float64, error) {
	v, err := Parse(in.Text)
	if err != nil {
		return 0, err
	}
	return ToRadians(v, in.Mode), nil
}

// Parse converts angle text to a finite float64
func Parse(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &InputError{Text: text, Reason: "empty input"}
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &InputError{Text: text, Reason: "value out of range"}
		}
		return 0, &InputError{Text: text, Reason: "not a number"}
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &InputError{Text: text, Reason: "value is not finite"}
	}
	return v, nil
}

// ToRadians converts v to radians when mode is Degrees
func ToRadians(v float64, mode Mode) float64 {
	if mode == Radians {
		return v
	}
	return FromDegrees(v)
}

// FromDegrees converts degrees to radians
func FromDegrees(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Wrap maps x into [-2π, 2π)
func Wrap(x float64) float64 {
	const window = 4 * math.Pi
	r := math.Mod(x+2*math.Pi, window)
	if r < 0 {
		r += window
	}
	// r+window can round up to window for tiny negative r
	if r >= window {
		r = 0
	}
	return r - 2*math.Pi
}
