// Package eval scores a clustering against a gold standard.
//
//	gold := eval.GoldByLabel(labels)
//	pw := eval.PairwiseF1(n, clusters, gold)
//	fmt.Println(pw.Precision, pw.Recall, pw.F1)
//
// Records missing from a clustering count as singletons. When a record
// appears in several clusters the last one wins.
package eval
