package ahu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanClassification(t *testing.T) {
	fan := NewFan(7600, 2810)
	assert.Equal(t, 3, fan.SFPClass)
	assert.InDelta(t, 0.7513, fan.Efficiency, 1e-4)

	// a fan moving more than 1 m³/s per kW caps at efficiency 1
	generous := NewFan(7200, 1000)
	assert.Equal(t, 1.0, generous.Efficiency)
	assert.Equal(t, 1, generous.SFPClass)
}

func TestFanCurrentPower(t *testing.T) {
	fan := NewFan(7600, 2810)
	assert.InDelta(t, 1362.22, fan.CurrentPower(3800), 0.01)
}

func TestRegisterPower(t *testing.T) {
	cooling := &Register{Kind: Cooling, MaxPower: 20_000}
	power, err := cooling.CurrentPower(7600, 24, 19)
	require.NoError(t, err)
	assert.InDelta(t, 12785.14, power, 0.01)

	out, err := cooling.OutTemperature(7600, 24, power)
	require.NoError(t, err)
	assert.InDelta(t, 19, out, 1e-9)

	heating := &Register{Kind: Heating, MaxPower: 15_000}
	power, err = heating.CurrentPower(7600, 19, 24)
	require.NoError(t, err)
	assert.InDelta(t, 12785.14, power, 0.01)

	_, err = (&Register{}).CurrentPower(7600, 19, 24)
	assert.ErrorIs(t, err, ErrUnsupportedRegisterKind)
}

func TestHeatRecovery(t *testing.T) {
	recovery := NewHeatRecovery(Plate, -13, 16, 22)
	assert.InDelta(t, 29.0/35.0, recovery.Coefficient, 1e-12)

	sa := recovery.SupplyTemperature(22, 8)
	assert.InDelta(t, 19.6, sa, 1e-9)

	power := recovery.CurrentPower(7600, 8, sa)
	assert.Greater(t, power, 0.0)
}

func TestConvertVolumeFlow(t *testing.T) {
	assert.Equal(t, 1.0, ConvertToM3S(3600))
	assert.Equal(t, 3600.0, ConvertToM3H(1))
}
