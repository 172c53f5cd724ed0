package content

// PublicationType describes one kind of academic publication.
type PublicationType struct {
	Description   string `yaml:"description"`
	TypicalLength string `yaml:"typical_length"`
	ReviewProcess string `yaml:"review_process"`
	Example       string `yaml:"example"`
	SuitableFor   string `yaml:"suitable_for"`
}

func (p PublicationType) Fields() []Field {
	return []Field{
		{Label: "Description", Text: p.Description},
		{Label: "Typical Length", Text: p.TypicalLength},
		{Label: "Review Process", Text: p.ReviewProcess},
		{Label: "Example", Text: p.Example},
		{Label: "Best For", Text: p.SuitableFor},
	}
}

// JournalMetric describes a journal-level bibliometric indicator.
type JournalMetric struct {
	Description string `yaml:"description"`
	Publisher   string `yaml:"publisher"`
	Strengths   string `yaml:"strengths"`
	Limitations string `yaml:"limitations"`
	Example     string `yaml:"example"`
}

func (m JournalMetric) Fields() []Field {
	return []Field{
		{Label: "Description", Text: m.Description},
		{Label: "Published by", Text: m.Publisher},
		{Label: "Strengths", Text: m.Strengths},
		{Label: "Limitations", Text: m.Limitations},
		{Label: "Examples", Text: m.Example},
	}
}

// PaperSection describes one section of an IMRaD manuscript.
type PaperSection struct {
	Purpose        string `yaml:"purpose"`
	Tips           string `yaml:"tips"`
	Example        string `yaml:"example"`
	CommonMistakes string `yaml:"common_mistakes"`
}

func (s PaperSection) Fields() []Field {
	return []Field{
		{Label: "Purpose", Text: s.Purpose},
		{Label: "Tips", Text: s.Tips},
		{Label: "Example", Text: s.Example},
		{Label: "Common Mistakes", Text: s.CommonMistakes},
	}
}

// PeerReviewType describes a peer review model.
type PeerReviewType struct {
	Description   string `yaml:"description"`
	Advantages    string `yaml:"advantages"`
	Disadvantages string `yaml:"disadvantages"`
	CommonIn      string `yaml:"common_in"`
}

func (p PeerReviewType) Fields() []Field {
	return []Field{
		{Label: "Description", Text: p.Description},
		{Label: "Advantages", Text: p.Advantages},
		{Label: "Disadvantages", Text: p.Disadvantages},
		{Label: "Common in", Text: p.CommonIn},
	}
}

// WarningCategory groups red flags of predatory journals.
type WarningCategory struct {
	Signs []string `yaml:"signs"`
}

func (w WarningCategory) Fields() []Field {
	return []Field{
		{Label: "Warning signs", Items: w.Signs},
	}
}

// PromotionStrategy groups channels for promoting a published paper.
type PromotionStrategy struct {
	Channels      []string `yaml:"channels"`
	BestPractices []string `yaml:"best_practices"`
}

func (p PromotionStrategy) Fields() []Field {
	return []Field{
		{Label: "Channels", Items: p.Channels},
		{Label: "Best practices", Items: p.BestPractices},
	}
}
