package sub

// Text is the trivial constant substitution: it resolves to its own value
// regardless of context. Bare strings normalize to Text.
type Text string

// NewText creates a Text substitution from a string.
func NewText(text string) Text { return Text(text) }

// Describe returns the text wrapped in single quotes.
func (t Text) Describe() string { return "'" + string(t) + "'" }

// Perform returns the constant text. It never fails.
func (t Text) Perform(*Context) (string, error) { return string(t), nil }
