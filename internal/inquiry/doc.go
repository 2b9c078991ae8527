// Package inquiry runs the inquire pipeline: fetch the inquiry for a video,
// decode it, drop server errors, cache the result and render its panel.
package inquiry
