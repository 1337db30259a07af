package types

import (
	"fmt"
	"sort"
)

// Solver families a setup can be paired with. The primitive layout differs
// between them, so a driver must never mix a setup with the wrong family.
const (
	SolverIso2D   = "iso2d"
	SolverEuler1D = "euler1d"
)

type Coordinates uint8

const (
	Cartesian Coordinates = iota
	SphericalPolar
)

var CoordinatesPrintNames = []string{"Cartesian", "Spherical Polar"}

func (c Coordinates) String() string {
	if int(c) < len(CoordinatesPrintNames) {
		return CoordinatesPrintNames[c]
	}
	return fmt.Sprintf("Coordinates(%d)", c)
}

type SinkModel uint8

const (
	SinkInactive SinkModel = iota
	SinkAccelerationFree
	SinkTorqueFree
	SinkForceFree
)

var (
	SinkModelNameMap = map[string]SinkModel{
		"none": SinkInactive,
		"af":   SinkAccelerationFree,
		"tf":   SinkTorqueFree,
		"ff":   SinkForceFree,
	}
	SinkModelPrintNames = []string{"Inactive", "Acceleration Free", "Torque Free", "Force Free"}
)

// NewSinkModel parses the short sink prescription code used in parameter
// strings.
func NewSinkModel(code string) (sm SinkModel, err error) {
	var ok bool
	if sm, ok = SinkModelNameMap[code]; !ok {
		err = fmt.Errorf("invalid sink_model %q, must be one of %v", code, SinkModelCodes())
	}
	return
}

// SinkModelCodes returns the accepted sink codes in sorted order.
func SinkModelCodes() (codes []string) {
	for code := range SinkModelNameMap {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return
}

func (sm SinkModel) String() string {
	if int(sm) < len(SinkModelPrintNames) {
		return SinkModelPrintNames[sm]
	}
	return fmt.Sprintf("SinkModel(%d)", sm)
}

// Code is the inverse of NewSinkModel.
func (sm SinkModel) Code() string {
	for code, model := range SinkModelNameMap {
		if model == sm {
			return code
		}
	}
	return ""
}

func (sm SinkModel) MarshalText() ([]byte, error) {
	return []byte(sm.Code()), nil
}

func (sm *SinkModel) UnmarshalText(text []byte) (err error) {
	*sm, err = NewSinkModel(string(text))
	return
}

// PointMass is a gravitating, possibly accreting body sampled at one instant.
type PointMass struct {
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	VX     float64   `json:"vx"`
	VY     float64   `json:"vy"`
	Mass   float64   `json:"mass"`
	Rate   float64   `json:"rate"`
	Radius float64   `json:"radius"`
	Model  SinkModel `json:"model"`
}

// EquationOfState is one of Isothermal, LocallyIsothermal or GammaLaw.
type EquationOfState interface {
	fmt.Stringer
	isEquationOfState()
}

type Isothermal struct {
	SoundSpeedSquared float64
}

type LocallyIsothermal struct {
	MachNumberSquared float64
}

type GammaLaw struct {
	GammaLawIndex float64
}

func (Isothermal) isEquationOfState()        {}
func (LocallyIsothermal) isEquationOfState() {}
func (GammaLaw) isEquationOfState()          {}

func (eos Isothermal) String() string {
	return fmt.Sprintf("Isothermal (cs^2 = %g)", eos.SoundSpeedSquared)
}

func (eos LocallyIsothermal) String() string {
	return fmt.Sprintf("Locally Isothermal (Mach^2 = %g)", eos.MachNumberSquared)
}

func (eos GammaLaw) String() string {
	return fmt.Sprintf("Gamma Law (gamma = %g)", eos.GammaLawIndex)
}

// BufferZone describes damping applied near the domain edge. NoBuffer is the
// only zone the setups here request.
type BufferZone interface {
	fmt.Stringer
	isBufferZone()
}

type NoBuffer struct{}

func (NoBuffer) isBufferZone()  {}
func (NoBuffer) String() string { return "None" }
