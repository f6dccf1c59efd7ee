// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

import "github.com/gazed/rigid/lin"

// config.go reduces the NewWorld API footprint using functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Config holds the tunables a World needs beyond its bounds: the per-step
// force/damping parameters and the broad/narrow-phase resolution settings.
type Config struct {
	gravity lin.V3

	octreeDepth int

	damping Damping
	cutoffs Cutoffs

	resolve ResolveConfig
}

// configDefaults provides reasonable defaults so a World runs correctly
// even if no options are set.
var configDefaults = Config{
	gravity:     lin.V3{X: 0, Y: -9.8, Z: 0},
	octreeDepth: 6,
	damping:     Damping{Linear: 0.999, Angular: 0.9},
	cutoffs:     Cutoffs{LowVelocitySqr: 0.1, LowRotation: 1e-4},
	resolve:     ResolveConfig{Restitution: 1.0, LowRotation: 1e-4, AngularLimitFactor: 0.2},
}

// Option configures a World at construction time.
//
//	w := phys.NewWorld(bounds,
//	    phys.Gravity(0, -9.8, 0),
//	    phys.OctreeDepth(8),
//	    phys.Restitution(0.5),
//	)
type Option func(*Config)

// Gravity sets the constant acceleration applied by the world's default
// gravity generator. The World attaches it to every dynamic body it spawns;
// a spawned body cannot opt out of it.
func Gravity(x, y, z float64) Option {
	return func(c *Config) { c.gravity.SetS(x, y, z) }
}

// OctreeDepth sets the broad-phase arena octree's fixed subdivision depth.
func OctreeDepth(depth int) Option {
	return func(c *Config) {
		if depth > 0 {
			c.octreeDepth = depth
		}
	}
}

// LinearDamping sets the per-second linear velocity damping factor applied
// during integration (1.0 means no damping).
func LinearDamping(factor float64) Option {
	return func(c *Config) { c.damping.Linear = factor }
}

// AngularDamping sets the per-second angular velocity damping factor
// applied during integration (1.0 means no damping).
func AngularDamping(factor float64) Option {
	return func(c *Config) { c.damping.Angular = factor }
}

// LowVelocityCutoff sets the squared linear velocity below which a body's
// linear velocity is snapped to zero after integration.
func LowVelocityCutoff(sqr float64) Option {
	return func(c *Config) { c.cutoffs.LowVelocitySqr = sqr }
}

// LowRotationCutoff sets the angular-inertia-along-normal magnitude below
// which resolution skips applying an angular correction to a contact.
func LowRotationCutoff(v float64) Option {
	return func(c *Config) {
		c.cutoffs.LowRotation = v
		c.resolve.LowRotation = v
	}
}

// Restitution sets the coefficient of restitution used by impulse
// resolution (1.0 is perfectly elastic, 0.0 perfectly inelastic).
func Restitution(e float64) Option {
	return func(c *Config) { c.resolve.Restitution = e }
}

// AngularCorrectionLimit sets the fraction of a contact's moment-arm length
// that penetration correction may resolve via rotation before the surplus
// is transferred to linear correction.
func AngularCorrectionLimit(factor float64) Option {
	return func(c *Config) { c.resolve.AngularLimitFactor = factor }
}
