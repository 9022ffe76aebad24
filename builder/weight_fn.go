// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// weight_fn.go: edge weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight DefaultWeightFn returns.
const DefaultEdgeWeight float64 = 1

// WeightFn returns the weight of the next connection. rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value is negative.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws from U[min,max). Without an RNG it returns min.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn draws an integer-valued weight from [min,max]. Integer weights
// keep path sums exact in float64. Without an RNG it returns min.
// Panics unless 0 ≤ min ≤ max.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
