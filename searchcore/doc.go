// Package searchcore implements an in-memory inverted index with TF-IDF
// ranking, boolean plus/minus query terms, and a lock-striped accumulator
// for parallel relevance scoring.
package searchcore
