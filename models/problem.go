package models

// Problem is the structured record extracted from one rendered problem page.
// Field names match the JSON contract consumed by the frontend.
type Problem struct {
	// Title is nil when the page header carries no title element.
	Title *string `json:"title"`

	// ProblemStatement holds the statement paragraphs as HTML, joined by
	// a double line break.
	ProblemStatement string `json:"problemStatement"`

	TimeLimit   string `json:"timeLimit"`
	MemoryLimit string `json:"memoryLimit"`

	InputSpecification  string `json:"inputSpecification"`
	OutputSpecification string `json:"outputSpecification"`

	// InputExamples[i] pairs with OutputExamples[i]. Never nil.
	InputExamples  []string `json:"inputExamples"`
	OutputExamples []string `json:"outputExamples"`

	Note string `json:"note"`
}

// Image is the payload returned by the image proxy.
type Image struct {
	Data        []byte
	ContentType string
}
