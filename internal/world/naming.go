package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orrery/orrery/internal/core/ecs"
)

// ErrOrdinalOverflow is returned when a sibling ordinal has no numeral or
// letter to render it with.
var ErrOrdinalOverflow = errors.New("world: ordinal out of naming range")

var romanNumerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// MaxPlanets is the largest planet count StandardName can render.
const MaxPlanets = len(romanNumerals)

// MaxMoons is the largest moon count per parent StandardName can render.
const MaxMoons = int('Z' - 'A' + 1)

// RomanNumeral renders a zero-based ordinal: 0 → "I", 3 → "IV".
func RomanNumeral(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= len(romanNumerals) {
		return "", fmt.Errorf("roman numeral for ordinal %d: %w", ordinal, ErrOrdinalOverflow)
	}
	return romanNumerals[ordinal], nil
}

// Letter renders a zero-based ordinal: 0 → "A", 2 → "C".
func Letter(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= MaxMoons {
		return "", fmt.Errorf("letter for ordinal %d: %w", ordinal, ErrOrdinalOverflow)
	}
	return string(rune('A' + ordinal)), nil
}

// StandardName renders body's catalogue name from its position among its
// siblings: "Rigel IV" for the fourth planet of Rigel, "Rigel IV-C" for that
// planet's third moon. Deeper descendants add one "-<letter>" per level.
func (s *State) StandardName(body BodyID) (string, error) {
	star := s.StarBodies.Owner(body)

	chain := []BodyID{body}
	for a := range ecs.Ancestors(s.Body.Relation, body) {
		chain = append(chain, a)
	}
	planet := chain[len(chain)-1]

	ordinal := -1
	i := 0
	for root := range s.Body.Relation.Roots(s.Bodies(star)) {
		if root == planet {
			ordinal = i
			break
		}
		i++
	}
	if ordinal < 0 {
		panic(fmt.Sprintf("world: planet %s missing from the bodies of star %s", planet, star))
	}
	numeral, err := RomanNumeral(ordinal)
	if err != nil {
		return "", fmt.Errorf("name of %s: %w", body, err)
	}

	var sb strings.Builder
	sb.WriteString(s.Star.Name.Index(star))
	sb.WriteByte(' ')
	sb.WriteString(numeral)
	for j := len(chain) - 2; j >= 0; j-- {
		ord, _ := s.Body.Relation.Ordinal(chain[j])
		letter, err := Letter(ord)
		if err != nil {
			return "", fmt.Errorf("name of %s: %w", body, err)
		}
		sb.WriteByte('-')
		sb.WriteString(letter)
	}
	return sb.String(), nil
}

// MustStandardName is StandardName for callers that treat an unnameable
// body as a construction bug.
func (s *State) MustStandardName(body BodyID) string {
	name, err := s.StandardName(body)
	if err != nil {
		panic(err)
	}
	return name
}
