// Package orrery draws schematic diagrams of a planet and its moons. Rotation periods, orbital periods and orbital distances are
// encoded as binary tick marks placed along rays and around circles, and the diagram is scaled to fit a fixed canvas.
package orrery
