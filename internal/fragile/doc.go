// Package fragile classifies functions as fragile when any of their code
// blocks originates from a fragile cluster.
//
// The classifier reads only the location attached to the leading instruction
// of each block. Blocks without a location never match. A function is fragile
// as soon as one of its blocks falls into any cluster, and every fragile
// function is reported once regardless of how many blocks or clusters
// implicate it.
//
// The iteration order of a [Set] is not significant. Consumers that display
// it sort by their own stable key.
package fragile
