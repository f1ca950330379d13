// Package knn implements a brute-force k-nearest-neighbour classifier.
//
// Distances to every training point are computed with the configured
// metric and the k smallest are kept in a bounded heap. The predicted label
// is the majority among those neighbours.
//
//	c, _ := knn.New(3, points, labels)
//	p, _ := c.Predict([]float64{1, 2})
//	fmt.Println(p.Label, p.VoteCounts)
package knn
