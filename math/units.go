// math/units.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Unit conversions. Distances are carried as meters and speeds as knots
// unless a name says otherwise.

const MetersPerNauticalMile = 1852.0
const FeetToMeters = 0.3048
const MetersToFeet = 1 / FeetToMeters

func NMToMeters(nm float64) float64 {
	return nm * MetersPerNauticalMile
}

func MetersToNM(m float64) float64 {
	return m / MetersPerNauticalMile
}

// KnotsToMPS converts a speed in knots to meters per second.
func KnotsToMPS(kts float64) float64 {
	return kts * MetersPerNauticalMile / 3600
}
