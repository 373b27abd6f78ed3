// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Decomposition is the planner's split of one topic into diverse
// sub-queries, owned by a single pipeline run.
type Decomposition struct {
	// Reasoning explains how the topic was decomposed.
	Reasoning string `json:"reasoning" yaml:"reasoning"`

	// SubQueries holds 3-4 short keyword queries, or a single element
	// (the base keywords) when the decomposer fell back.
	SubQueries []string `json:"sub_queries" yaml:"sub_queries"`
}

// Insight is a single citable finding pulled from a paper's abstract.
// Multiple insights may reference the same paper.
type Insight struct {
	// Text is the insight itself, 1-2 sentences.
	Text string `json:"insight" yaml:"insight"`

	// Source is a human-readable citation string ("Author et al. (Year)").
	Source string `json:"source" yaml:"source"`

	// PaperID back-references the paper the insight came from.
	PaperID string `json:"paperId" yaml:"paper_id"`
}

// Narrative is the four-part script produced by the editor stage.
type Narrative struct {
	Hook         string `json:"hook" yaml:"hook"`
	Introduction string `json:"introduction" yaml:"introduction"`
	DeepDive     string `json:"deep_dive" yaml:"deep_dive"`
	Conclusion   string `json:"conclusion" yaml:"conclusion"`
}

// Sections returns the narrative parts in presentation order.
func (n Narrative) Sections() []string {
	return []string{n.Hook, n.Introduction, n.DeepDive, n.Conclusion}
}

// Reference is one entry in the blueprint's reference list.
type Reference struct {
	Title   string `json:"title" yaml:"title"`
	Authors string `json:"authors" yaml:"authors"`
	Year    int    `json:"year,omitempty" yaml:"year,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

// ContentBlueprint is the terminal artifact of the pipeline. Ownership
// passes to the caller once produced. Every reference corresponds to a
// paper from the deduplicated search result set.
type ContentBlueprint struct {
	Insights   []Insight   `json:"key_insights" yaml:"key_insights"`
	Narrative  Narrative   `json:"narrative" yaml:"narrative"`
	References []Reference `json:"references" yaml:"references"`
}
