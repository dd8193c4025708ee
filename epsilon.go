package geom2d

import (
	"math"
	"sync/atomic"
)

// defaultEpsilon is used whenever the global epsilon has never been set.
const defaultEpsilon = 1e-9

// globalEpsilon stores the current epsilon value as the bit pattern of a
// float64, so it can be read and written atomically without a mutex.
var globalEpsilon atomic.Uint64

func init() {
	globalEpsilon.Store(math.Float64bits(defaultEpsilon))
}

// GetEpsilon returns the package-wide tolerance used by approximate
// comparisons throughout geomkernel (point equality, orientation,
// collinearity, and so on).
//
// Returns:
//   - float64: The current global epsilon value.
func GetEpsilon() float64 {
	return math.Float64frombits(globalEpsilon.Load())
}

// SetEpsilon sets the package-wide tolerance used by approximate
// comparisons throughout geomkernel.
//
// Parameters:
//   - epsilon (float64): The new tolerance. Negative values are stored as-is;
//     callers needing an always-positive tolerance should pass math.Abs(epsilon).
//
// Behavior:
//   - This affects every subsequent call into geomkernel that reads the
//     global epsilon; it does not retroactively change results already computed.
func SetEpsilon(epsilon float64) {
	globalEpsilon.Store(math.Float64bits(epsilon))
}
