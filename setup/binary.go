package setup

import (
	"fmt"
	"io"
	"math"

	"github.com/notargets/gosailfish/form"
	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/orbital"
	"github.com/notargets/gosailfish/types"
)

// Binary is a circumbinary disk around two accreting point masses on a
// Keplerian orbit of unit separation and unit total mass.
type Binary struct {
	defaults
	DomainRadius float64
	Nu           float64
	MachNumber   float64
	SinkRadius   float64
	SinkRate1    float64
	SinkRate2    float64
	SinkModel    types.SinkModel
	Elements     orbital.OrbitalElements
	form         *form.Form
}

func binaryForm() *form.Form {
	return form.New().
		Item("domain_radius", 12.0, "half-size of the simulation domain (a)").
		Item("nu", 1e-3, "kinematic viscosity coefficient (Omega a^2)").
		Item("mach_number", 10.0, "mach number for locally isothermal EOS").
		Item("sink_radius", 0.05, "sink kernel radius (a)").
		Item("sink_model", "af", "sink prescription: [none|af|tf|ff]").
		Item("sink_rate", 10.0, "rate of mass subtraction in the sink (Omega)").
		Item("q", 1.0, "system mass ratio: [0-1]").
		Item("e", 0.0, "orbital eccentricity: [0-1]")
}

func NewBinary(parameters string) (b *Binary, err error) {
	var (
		f *form.Form
	)
	if f, err = binaryForm().MergeString(parameters); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	b = &Binary{
		DomainRadius: f.Get("domain_radius").Float64(),
		Nu:           f.Get("nu").Float64(),
		MachNumber:   f.Get("mach_number").Float64(),
		SinkRadius:   f.Get("sink_radius").Float64(),
		SinkRate1:    f.Get("sink_rate").Float64(),
		SinkRate2:    f.Get("sink_rate").Float64(),
		form:         f,
	}
	if b.SinkModel, err = types.NewSinkModel(f.Get("sink_model").String()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSetup, err)
	}
	if b.Elements, err = orbital.NewOrbitalElements(1, 1, f.Get("q").Float64(), f.Get("e").Float64()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSetup, err)
	}
	if !(b.DomainRadius > 0) {
		return nil, fmt.Errorf("%w: domain_radius must be positive, got %g", ErrInvalidSetup, b.DomainRadius)
	}
	return
}

// Parameter reads back a resolved parameter by name.
func (b *Binary) Parameter(name string) form.Value {
	return b.form.Get(name)
}

func (b *Binary) PrintParameters(w io.Writer) {
	b.form.Print(w)
}

func (*Binary) SolverName() string { return types.SolverIso2D }

// InitialPrimitive sets unit density and circular Keplerian velocity about
// the origin, softened over the sink radius.
func (b *Binary) InitialPrimitive(x, y float64, primitive []float64) {
	var (
		r       = math.Sqrt(x*x + y*y)
		rs      = math.Sqrt(x*x + y*y + b.SinkRadius*b.SinkRadius)
		phiHatX = -y / math.Max(r, 1e-12)
		phiHatY = x / math.Max(r, 1e-12)
	)
	primitive[0] = 1.0
	primitive[1] = phiHatX / math.Sqrt(rs)
	primitive[2] = phiHatY / math.Sqrt(rs)
}

// Masses returns the primary then the secondary at time t.
func (b *Binary) Masses(t float64) []types.PointMass {
	var (
		state = b.Elements.OrbitalStateFromTime(t)
		rates = [2]float64{b.SinkRate1, b.SinkRate2}
		pm    = make([]types.PointMass, 2)
	)
	for n, body := range state {
		pm[n] = types.PointMass{
			X:      body.Position.X,
			Y:      body.Position.Y,
			VX:     body.Velocity.X,
			VY:     body.Velocity.Y,
			Mass:   body.Mass,
			Rate:   rates[n],
			Radius: b.SinkRadius,
			Model:  b.SinkModel,
		}
	}
	return pm
}

func (b *Binary) EquationOfState() types.EquationOfState {
	return types.LocallyIsothermal{MachNumberSquared: b.MachNumber * b.MachNumber}
}

func (b *Binary) Viscosity() (float64, bool) { return b.Nu, true }

func (b *Binary) Mesh(resolution int) mesh.Mesh {
	return mesh.NewCenteredSquare(b.DomainRadius, resolution)
}
