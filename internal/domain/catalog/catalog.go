package catalog

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownTooth   = errors.New("unknown tooth")
)

// hitRadius es la distancia máxima (en unidades normalizadas 0-100)
// entre un click y el centro de una pieza para considerarlo selección.
const hitRadius = 3.5

func def(id string, x, y float64, maxillary bool, quadrant int) ToothDefinition {
	return ToothDefinition{
		ID:          id,
		Label:       id,
		X:           x,
		Y:           y,
		IsMaxillary: maxillary,
		Quadrant:    quadrant,
	}
}

func idSet(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func ParseSpecies(s string) (Species, error) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesDog:
		return SpeciesDog, nil
	case SpeciesCat:
		return SpeciesCat, nil
	default:
		return "", ErrUnknownSpecies
	}
}

// ForSpecies devuelve el mapa dental completo de la especie, en orden
// de declaración. El slice devuelto es una copia: el catálogo es
// inmutable.
func ForSpecies(sp Species) ([]ToothDefinition, error) {
	src, err := table(sp)
	if err != nil {
		return nil, err
	}
	out := make([]ToothDefinition, len(src))
	copy(out, src)
	return out, nil
}

func Get(sp Species, toothID string) (ToothDefinition, error) {
	src, err := table(sp)
	if err != nil {
		return ToothDefinition{}, err
	}
	for _, t := range src {
		if t.ID == toothID {
			return t, nil
		}
	}
	return ToothDefinition{}, ErrUnknownTooth
}

// Next devuelve la pieza siguiente en orden de declaración, con wrap
// circular (de la última vuelve a la primera).
func Next(sp Species, toothID string) (ToothDefinition, error) {
	return step(sp, toothID, +1)
}

// Previous devuelve la pieza anterior en orden de declaración, con
// wrap circular.
func Previous(sp Species, toothID string) (ToothDefinition, error) {
	return step(sp, toothID, -1)
}

func step(sp Species, toothID string, delta int) (ToothDefinition, error) {
	src, err := table(sp)
	if err != nil {
		return ToothDefinition{}, err
	}
	for i, t := range src {
		if t.ID == toothID {
			n := len(src)
			return src[(i+delta+n)%n], nil
		}
	}
	return ToothDefinition{}, ErrUnknownTooth
}

// FurcationApplicable indica si la pieza admite grado de furcación.
// Las piezas unirradiculares (listas por especie) no lo admiten.
func FurcationApplicable(sp Species, toothID string) bool {
	var excluded map[string]struct{}
	switch sp {
	case SpeciesCat:
		excluded = catNoFurcation
	default:
		excluded = dogNoFurcation
	}
	_, ok := excluded[toothID]
	return !ok
}

// Hit resuelve un click en coordenadas normalizadas (0-100) a la pieza
// más cercana dentro de hitRadius. Devuelve false si ninguna pieza
// queda a tiro.
func Hit(sp Species, x, y float64) (ToothDefinition, bool) {
	src, err := table(sp)
	if err != nil {
		return ToothDefinition{}, false
	}

	var best ToothDefinition
	bestDist := math.Inf(1)
	for _, t := range src {
		dx := t.X - x
		dy := t.Y - y
		d := math.Hypot(dx, dy)
		if d < bestDist {
			best = t
			bestDist = d
		}
	}
	if bestDist > hitRadius {
		return ToothDefinition{}, false
	}
	return best, true
}

func table(sp Species) ([]ToothDefinition, error) {
	switch sp {
	case SpeciesDog:
		return dogTeeth, nil
	case SpeciesCat:
		return catTeeth, nil
	default:
		return nil, ErrUnknownSpecies
	}
}
