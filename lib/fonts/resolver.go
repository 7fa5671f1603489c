package fonts

import (
	"strings"

	"github.com/stylepad/stylepad-go/lib/exception"
)

// FontRef is an opaque identifier for a platform font. The engine never
// inspects it; it only carries it back to whatever platform layer injected
// the resolver.
type FontRef struct {
	Id     string
	Family string
}

// Resolver turns a requested family name into a platform font. Platform
// font services are external capabilities, so the engine only ever talks to
// this interface.
type Resolver interface {
	Resolve(family string) (*FontRef, error)
	DefaultFamily() string
}

// StaticResolver resolves against a fixed family table. Lookup is
// case-insensitive.
type StaticResolver struct {
	families      map[string]FontRef
	defaultFamily string
}

func NewStaticResolver(defaultFamily string, families ...string) *StaticResolver {
	var r = &StaticResolver{
		families:      make(map[string]FontRef),
		defaultFamily: defaultFamily,
	}
	for _, family := range append(families, defaultFamily) {
		r.families[strings.ToLower(family)] = FontRef{
			Id:     strings.ToLower(strings.ReplaceAll(family, " ", "-")),
			Family: family,
		}
	}
	return r
}

func (r *StaticResolver) Resolve(family string) (*FontRef, error) {
	var ref, ok = r.families[strings.ToLower(family)]
	if !ok {
		return nil, exception.NewAttributeResolutionError(family)
	}
	return &ref, nil
}

func (r *StaticResolver) DefaultFamily() string {
	return r.defaultFamily
}
