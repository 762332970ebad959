package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
)

// parseClicks reads "x,y;x,y;..." into pixel points. Blank entries are skipped.
func parseClicks(s string) ([]core.Point, error) {
	var points []core.Point
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		xs, ys, ok := strings.Cut(entry, ",")
		if !ok {
			return nil, fmt.Errorf("click %q: want x,y", entry)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("click %q: %w", entry, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("click %q: %w", entry, err)
		}
		points = append(points, core.Point{X: x, Y: y})
	}
	return points, nil
}
