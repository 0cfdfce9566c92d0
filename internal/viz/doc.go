// Package viz renders an evaluated spin field in the terminal.
//
// Each lattice point becomes one glyph: an arrow for the in-plane component
// direction, a dot where the spin is (mostly) out of plane. Glyphs are
// colored by the z-component through a blue-white-red ramp, the same mapping
// the SVG exporter uses for the hexagonal cells.
package viz
