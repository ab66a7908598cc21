package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ising/anneal"
)

// TestLinearSchedule_Endpoints verifies inclusive ends in both ramp
// directions and the single-entry degenerate case.
func TestLinearSchedule_Endpoints(t *testing.T) {
	up := anneal.LinearSchedule(0.1, 2.0, 5)
	assert.Len(t, up, 5)
	assert.Equal(t, 0.1, up[0])
	assert.Equal(t, 2.0, up[4])
	for i := 1; i < len(up); i++ {
		assert.Greater(t, up[i], up[i-1], "ascending ramp must increase")
	}

	// The source notebook's direction: β falling from 1.0 toward a floor.
	down := anneal.LinearSchedule(1.0, 0.05, 5)
	assert.Equal(t, 1.0, down[0])
	assert.Equal(t, 0.05, down[4])
	for i := 1; i < len(down); i++ {
		assert.Less(t, down[i], down[i-1], "descending ramp must decrease")
	}

	assert.Equal(t, []float64{0.7}, anneal.LinearSchedule(0.7, 3, 1))
}

// TestLinearSchedule_EmptyForBadLength verifies the nil contract for n<=0;
// Sample then rejects it as an empty schedule.
func TestLinearSchedule_EmptyForBadLength(t *testing.T) {
	assert.Nil(t, anneal.LinearSchedule(0.1, 1, 0))
	assert.Nil(t, anneal.LinearSchedule(0.1, 1, -3))
	assert.Nil(t, anneal.ConstantSchedule(1, 0))
	assert.Nil(t, anneal.GeometricSchedule(1, 2, 0))
}

// TestConstantSchedule verifies length and uniformity.
func TestConstantSchedule(t *testing.T) {
	s := anneal.ConstantSchedule(0.8, 4)
	assert.Equal(t, []float64{0.8, 0.8, 0.8, 0.8}, s)
}

// TestGeometricSchedule verifies the multiplicative progression in both
// cooling (factor>1) and heating (factor<1) regimes.
func TestGeometricSchedule(t *testing.T) {
	cool := anneal.GeometricSchedule(0.5, 2, 4)
	assert.Equal(t, []float64{0.5, 1, 2, 4}, cool)

	heat := anneal.GeometricSchedule(1, 0.5, 3)
	assert.Equal(t, []float64{1, 0.5, 0.25}, heat)
}
