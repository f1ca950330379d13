// Package dataset defines the point set model shared by the clustering and
// classification packages.
//
// A dataset is a non-empty [][]float64 whose points share one positive
// dimensionality, inferred from the first point. Validate enforces this;
// Bounds and DistinctCount derive the values the k-means initializer and
// the k bound check need. Decode and Load read YAML or JSON documents.
package dataset
