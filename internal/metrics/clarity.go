package metrics

import (
	"github.com/Sul4v/capstone/internal/readability"
)

// Clarity rescales a Flesch Reading Ease score into [0, 1] by dividing
// by 100 and clamping. Empty or unscoreable text yields 0.
func Clarity(doc *Document) float64 {
	if doc.WordCount() == 0 {
		return 0
	}
	score, err := readability.FleschReadingEase(doc.PlainText())
	if err != nil {
		return 0
	}
	return clamp(score/100.0, 0, 1)
}
