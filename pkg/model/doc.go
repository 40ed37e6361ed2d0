// Package model re-exports the engineering model consumed by report
// rendering. The model is the data contract with the wind-load
// calculation engine: pressures, coefficients and factors arrive fully
// computed and the renderer treats them as read-only.
package model
