package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkModel(t *testing.T) {
	{ // Every code round trips
		codes := []string{"none", "af", "tf", "ff"}
		models := []SinkModel{SinkInactive, SinkAccelerationFree, SinkTorqueFree, SinkForceFree}
		for i, code := range codes {
			sm, err := NewSinkModel(code)
			assert.NoError(t, err)
			assert.Equal(t, models[i], sm)
			assert.Equal(t, code, sm.Code())
		}
	}
	{ // Unknown codes name the accepted set
		_, err := NewSinkModel("xx")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `"xx"`)
		assert.Contains(t, err.Error(), "[af ff none tf]")
	}
	{
		assert.Equal(t, "Torque Free", SinkTorqueFree.String())
		text, err := SinkForceFree.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, "ff", string(text))
		var sm SinkModel
		assert.NoError(t, sm.UnmarshalText([]byte("tf")))
		assert.Equal(t, SinkTorqueFree, sm)
		assert.Error(t, sm.UnmarshalText([]byte("AF")))
	}
}

func TestEquationOfState(t *testing.T) {
	var eos EquationOfState = LocallyIsothermal{MachNumberSquared: 100}
	_, isGamma := eos.(GammaLaw)
	assert.False(t, isGamma)
	assert.Equal(t, "Locally Isothermal (Mach^2 = 100)", eos.String())
	assert.Equal(t, "Gamma Law (gamma = 1.6666666666666667)", GammaLaw{5. / 3.}.String())
	assert.Equal(t, "Isothermal (cs^2 = 1)", Isothermal{1}.String())
	assert.Equal(t, "Spherical Polar", SphericalPolar.String())
	assert.Equal(t, "None", NoBuffer{}.String())
}
