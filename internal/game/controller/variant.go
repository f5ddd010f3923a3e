package controller

import "fmt"

// Variant selects a counting game. The zero value is deliberately unset so
// that a Controller cannot be built without binding a placement strategy.
type Variant int

const (
	VariantUnset Variant = iota
	EvenLineMatch
	ClusterMatch
	UnevenLineMatch
	OrthogonalLineMatch
	ReverseClusterMatch
	ClusterClusterMatch
	BriefPresentation
	NutsInCan
	VisNuts
)

var variantNames = map[Variant]string{
	EvenLineMatch:       "even_line_match",
	ClusterMatch:        "cluster_match",
	UnevenLineMatch:     "uneven_line_match",
	OrthogonalLineMatch: "orthogonal_line_match",
	ReverseClusterMatch: "reverse_cluster_match",
	ClusterClusterMatch: "cluster_cluster_match",
	BriefPresentation:   "brief_presentation",
	NutsInCan:           "nuts_in_can",
	VisNuts:             "vis_nuts",
}

// Variants lists every playable variant.
var Variants = []Variant{
	EvenLineMatch,
	ClusterMatch,
	UnevenLineMatch,
	OrthogonalLineMatch,
	ReverseClusterMatch,
	ClusterClusterMatch,
	BriefPresentation,
	NutsInCan,
	VisNuts,
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a configuration name to its variant.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return VariantUnset, fmt.Errorf("unknown game variant %q", name)
}

// flashesTargets reports whether the variant runs the one-target-per-step
// flashing animation instead of the plain counting phase.
func (v Variant) flashesTargets() bool {
	return v == NutsInCan || v == VisNuts
}
