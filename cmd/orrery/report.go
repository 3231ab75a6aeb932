package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/orrery/orrery/internal/physics"
	"github.com/orrery/orrery/internal/world"
	"go.uber.org/zap"
)

// report prints every body of every star with its catalogue name, given
// name, region terrain mix, and distance/position at each query offset.
func report(w io.Writer, sys *world.SystemState, queryAt []time.Duration, log *zap.Logger) error {
	s := sys.State
	au := float64(physics.AstronomicalUnit)

	for star := range s.Stars().All() {
		fmt.Fprintf(w, "  %s\n", s.Star.Name.Index(star))
		for body := range s.Bodies(star).All() {
			name, err := s.StandardName(body)
			if errors.Is(err, world.ErrOrdinalOverflow) {
				log.Warn("body left unnamed", zap.String("body", s.Body.Name.Index(body)), zap.Error(err))
				name = "(unnamed)"
			} else if err != nil {
				return err
			}

			indent := "    "
			if _, isMoon := s.Body.Relation.Parent(body); isMoon {
				indent = "      "
			}
			fmt.Fprintf(w, "%s%-16s %-12s %s\n", indent, name, s.Body.Name.Index(body), terrainMix(s, body))
			for _, at := range queryAt {
				pos := s.Position(body, at)
				fmt.Fprintf(w, "%s  t+%-6s d=%.4f AU  pos=(%.4f, %.4f, %.4f) AU\n",
					indent, formatDays(at), float64(s.Distance(body, at))/au, pos.X/au, pos.Y/au, pos.Z/au)
			}
		}
	}
	return nil
}

// terrainMix summarises a body's regions, e.g. "3 regions: ice×2 ocean×1".
func terrainMix(s *world.State, body world.BodyID) string {
	regions := s.Regions(body)
	if regions.IsEmpty() {
		return "no regions"
	}
	counts := map[world.Terrain]int{}
	for id := range regions.All() {
		counts[s.Region.Terrain.Index(id)]++
	}
	keys := make([]string, 0, len(counts))
	for t := range counts {
		keys = append(keys, string(t))
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d regions:", regions.Len())
	for _, k := range keys {
		label := k
		if label == "" {
			label = "unknown"
		}
		fmt.Fprintf(&sb, " %s×%d", label, counts[world.Terrain(k)])
	}
	return sb.String()
}

func formatDays(d time.Duration) string {
	return fmt.Sprintf("%gd", d.Hours()/24)
}
