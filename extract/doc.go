// Package extract reduces noisy web pages to clean article text.
//
// The extraction is readability-style: a pass over likely main-content
// containers, paragraph-level text collection with a boilerplate length
// filter, and order-preserving deduplication of repeated paragraphs.
package extract
