// Package wuff explores the registry of dog names published by the city of
// Zürich. It finds dogs by name, computes statistics over the whole
// registry and makes up new dogs from real names and birth years.
package wuff

var (
	// Version of wuff, set during the build.
	Version = "v0.1.0"

	// Build timestamp, set during the build.
	Build = "n/a"
)
