package registry

import (
	"github.com/MeKo-Tech/medscan/internal/testtypes/arterial"
	"github.com/MeKo-Tech/medscan/internal/testtypes/carotid"
	"github.com/MeKo-Tech/medscan/internal/testtypes/coronary"
	"github.com/MeKo-Tech/medscan/internal/testtypes/echo"
	"github.com/MeKo-Tech/medscan/internal/testtypes/generic"
	"github.com/MeKo-Tech/medscan/internal/testtypes/labs"
	"github.com/MeKo-Tech/medscan/internal/testtypes/stress"
	"github.com/MeKo-Tech/medscan/internal/testtypes/venous"
)

// Default builds a registry with every built-in report family. The stress
// family registers under its subtype grid; the family handler itself is
// hidden from listings.
func Default(corrections *CorrectionCache) *Registry {
	r := New(corrections)

	r.Register(echo.New())
	r.Register(labs.New())
	r.Register(carotid.New())
	r.Register(arterial.New())
	r.Register(venous.New())
	r.Register(coronary.New())

	stressHandler := stress.New()
	r.Register(stressHandler)
	for _, id := range stress.SubtypeIDs() {
		r.RegisterSubtype(id, stressHandler)
	}

	// The catch-all registers last so specialized families rank first on
	// equal confidence.
	r.Register(generic.New())

	return r
}
