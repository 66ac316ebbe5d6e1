package display

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidArgument = errors.New("invalid argument")

// bar ramp, empty to full in eighths of a block
var barSymbols = []rune("░▏▎▍▌▋▊▉█")

const (
	emptySymbol = 0
	fullSymbol  = 8
)

// RenderBar draws percent (0-100) as a bar exactly width runes wide.
func RenderBar(percent float64, width int) (string, error) {
	if !(percent >= 0 && percent <= 100) {
		return "", fmt.Errorf("%w: percent must be between 0 and 100, got %v", ErrInvalidArgument, percent)
	}
	if width < 1 {
		return "", fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidArgument, width)
	}

	eighths := int(math.Floor(float64(width) * 8 * percent / 100))
	fullBlocks := eighths / 8

	if fullBlocks >= width {
		return strings.Repeat(string(barSymbols[fullSymbol]), width), nil
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(string(barSymbols[fullSymbol]), fullBlocks))
	b.WriteRune(barSymbols[eighths%8])
	b.WriteString(strings.Repeat(string(barSymbols[emptySymbol]), width-fullBlocks-1))
	return b.String(), nil
}
