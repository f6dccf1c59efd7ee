// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package phys

// Diagnostics exposes per-step counters for conditions a host may want to
// observe without a debug overlay: contacts resolution had to skip, and
// penetration corrections that hit the angular-correction limit and had to
// transfer surplus into linear correction.
type Diagnostics struct {
	SkippedContacts    int
	ClampedCorrections int
}

// reset zeroes every counter. Called once per Step, before resolution runs.
func (d *Diagnostics) reset() {
	d.SkippedContacts = 0
	d.ClampedCorrections = 0
}
