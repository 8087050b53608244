package path

import (
	"github.com/jwmdev/shipsim/internal/network"
	"github.com/jwmdev/shipsim/internal/types"
	"github.com/jwmdev/shipsim/internal/value"
)

// Mode distinguishes the two PathSelector shapes of spec.md §4.2:
// Connect requires a sink, Explore's sink is optional.
type Mode int

const (
	Connect Mode = iota
	Explore
)

// Constraint prunes candidate paths by a cumulative metric. The three
// concrete constraints below are the only ones spec.md §4.2 names.
type Constraint interface {
	Satisfied(p *Path) bool
}

type DistanceConstraint struct{ Max value.Mile }

func (c DistanceConstraint) Satisfied(p *Path) bool { return !c.Max.Less(p.Distance()) }

type CostConstraint struct{ Max value.Dollar }

func (c CostConstraint) Satisfied(p *Path) bool { return !c.Max.Less(p.Cost()) }

type TimeConstraint struct{ Max value.Hour }

func (c TimeConstraint) Satisfied(p *Path) bool { return !c.Max.Less(p.Time()) }

// PathSelector bundles the inputs to Conn.Find, mirroring spec.md §4.2.
type PathSelector struct {
	Mode        Mode
	Source      *network.Location
	Sink        *network.Location // nil is valid only when Mode == Explore
	Modes       types.PathModeSet
	Constraints []Constraint
}

func (s PathSelector) satisfiesAll(p *Path) bool {
	for _, c := range s.Constraints {
		if !c.Satisfied(p) {
			return false
		}
	}
	return true
}

// dfsModeOrder fixes the order PathModes are tried when branching at a
// segment: unexpedited before expedited. This is what produces the
// discovery order spec.md §4.2's example expects when both modes are
// allowed on every hop of a multi-hop path (unexpedited-first prefixes
// sort before expedited-first ones).
var dfsModeOrder = []types.PathMode{types.Unexpedited, types.Expedited}
