package catalog

// Species define las especies soportadas por los mapas dentales.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// ToothDefinition es una entrada inmutable del mapa dental de una especie.
// X/Y son porcentajes (0-100) relativos a la imagen del chart; están
// calibrados contra las imágenes companion y no deben ajustarse.
type ToothDefinition struct {
	ID    string  // número Triadan, ej. "104"
	Label string  // texto visible (hoy igual al ID)
	X     float64 // % respecto al ancho del chart
	Y     float64 // % respecto al alto del chart

	IsMaxillary bool // maxilar (superior) vs mandíbula
	Quadrant    int  // cuadrante anatómico 1-4
}
