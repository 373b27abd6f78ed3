// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the blueprint-engine
// pipeline: papers returned by the search provider, enriched content
// produced by the fetcher, and the blueprint artifacts produced by the
// synthesis stages.
package types

// Paper is a single result from the academic search API. Papers are
// immutable once returned; identity is the upstream PaperID.
type Paper struct {
	// PaperID is the opaque identifier assigned by the search provider,
	// unique within a search session.
	PaperID string `json:"paperId" yaml:"paper_id"`

	// Title is the paper title. Results without a title are discarded.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, when the provider has one.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Authors lists author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year (0 if unknown).
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// CitationCount is the provider's citation count (0 if unknown).
	CitationCount int `json:"citationCount,omitempty" yaml:"citation_count,omitempty"`

	// URL is the landing page for the paper.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// OpenAccessPDF is a direct PDF link, when the paper is open access.
	OpenAccessPDF string `json:"openAccessPdf,omitempty" yaml:"open_access_pdf,omitempty"`
}

// ContentType classifies how much of a paper's text was recovered.
type ContentType string

const (
	// ContentFullText means the fetched text exceeded the full-text threshold.
	ContentFullText ContentType = "full_text"

	// ContentPartial means some text was fetched but not enough to count
	// as full text, or only the landing page could be read.
	ContentPartial ContentType = "partial"

	// ContentAbstract means no fetch succeeded and the abstract stands in.
	ContentAbstract ContentType = "abstract"
)

// EnrichedContent is the text recovered for one paper, with provenance.
// Created once by the content fetcher and never mutated afterwards.
type EnrichedContent struct {
	// Type records how much text was recovered.
	Type ContentType `json:"content_type" yaml:"content_type"`

	// Content is the recovered (possibly truncated) text.
	Content string `json:"content" yaml:"content"`

	// Source tags where the content came from: "reader_pdf",
	// "reader_page", or "abstract".
	Source string `json:"source" yaml:"source"`

	// WordCount is the whitespace-token count of Content.
	WordCount int `json:"word_count" yaml:"word_count"`
}

// EnrichedPaper pairs a Paper with its fetched content block.
type EnrichedPaper struct {
	Paper `yaml:",inline"`

	Content EnrichedContent `json:"full_content" yaml:"full_content"`
}
