package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// StageCount is the number of authored stages.
const StageCount = 5

var ErrStageOutOfRange = errors.New("levels: stage index out of range")

// Stage is a row-major grid of single-character tile codes. Rows may differ
// in length; a missing cell reads as a space.
type Stage []string

// Rows returns the number of rows.
func (s Stage) Rows() int {
	return len(s)
}

// At returns the tile code at (row, col), or ' ' outside the grid.
func (s Stage) At(row, col int) byte {
	if row < 0 || row >= len(s) || col < 0 || col >= len(s[row]) {
		return ' '
	}
	return s[row][col]
}

// Count returns how many cells hold code.
func (s Stage) Count(code byte) int {
	n := 0
	for _, row := range s {
		n += strings.Count(row, string(code))
	}
	return n
}

func LoadStage(index int) (Stage, error) {
	if index < 0 || index >= StageCount {
		return nil, fmt.Errorf("%w: %d", ErrStageOutOfRange, index)
	}
	rows, err := readRows(fmt.Sprintf("stage%d.txt", index))
	if err != nil {
		return nil, err
	}
	return Stage(rows), nil
}

// LoadStages returns every stage in play order.
func LoadStages() ([]Stage, error) {
	stages := make([]Stage, 0, StageCount)
	for i := 0; i < StageCount; i++ {
		s, err := LoadStage(i)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}

// LoadBackground returns the background band codes, top band first.
func LoadBackground() ([]string, error) {
	return readRows("background.txt")
}

func readRows(name string) ([]string, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}
