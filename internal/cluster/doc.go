// Package cluster describes fragile clusters: rectangular source regions flagged
// as risky by an upstream source-level analysis.
//
// A cluster is a pair of positions. The overlap test treats line and column as
// independent ranges:
//
//	start.Line <= pos.Line <= end.Line && start.Column <= pos.Column <= end.Column
//
// This is not a reading-order containment test. A position on a line strictly
// between start and end still has to fit into the [start.Column, end.Column]
// range to match. The rule is isolated in [IsWithin] and can be replaced with
// any [Matcher] without touching the classifier.
//
// Clusters are loaded from YAML documents:
//
//	clusters:
//	  - start: "1:1"
//	    end: "2:1"
package cluster
