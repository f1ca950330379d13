// Package bayes implements a naive Bayes text classifier.
//
// Training counts documents per label and, per label, the documents each
// token occurs in. Prediction scores every token against every label,
// pulls rare tokens towards the uniform label prior, ignores scores close
// to the prior and combines the rest into a label probability.
//
//	c := bayes.New()
//	c.Train("spam", "cheap pills today")
//	c.Train("ham", "meeting schedule tomorrow")
//	p, _ := c.Predict("cheap pills")
//	fmt.Println(p.Label, p.Probability)
package bayes
