package tokens

// Estimator approximates how many tokens a model will charge for a piece of
// text. Implementations must be pure: same input, same count.
type Estimator interface {
	Estimate(text string) int
}

// Heuristic estimates tokens as ceil(len/3). Three bytes per token is a
// rough average across the models this tool targets; it is a stand-in for a
// real tokenizer, not derived from any vocabulary.
type Heuristic struct{}

func (Heuristic) Estimate(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 2) / 3
}
