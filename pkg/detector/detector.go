// Package detector identifies the dominant language of extracted text.
package detector

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// sampleWords bounds how much text feeds the n-gram models; frequency
// analysis of the opening words is enough to pick the dominant language.
const sampleWords = 500

// confidenceFloor below which a detection is not considered reliable.
const confidenceFloor = 0.6

// Result reports a language detection outcome.
type Result struct {
	// Language is the English name of the detected language, e.g. "German".
	Language string
	// Confidence is lingua's score for that language, 0..1.
	Confidence float64
	// Reliable is false when no language cleared the confidence floor;
	// callers should then let the model infer the language itself.
	Reliable bool
}

// Detector wraps a lingua detector built from all supported languages.
type Detector struct {
	once  sync.Once
	inner lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{}
}

// Detect analyzes the dominant language of text. The model build is
// deferred to the first call since loading the n-gram data is not free.
func (d *Detector) Detect(text string) Result {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Result{}
	}
	if len(words) > sampleWords {
		words = words[:sampleWords]
	}
	sample := strings.Join(words, " ")

	d.once.Do(func() {
		d.inner = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})

	language, exists := d.inner.DetectLanguageOf(sample)
	if !exists {
		return Result{}
	}

	confidence := d.inner.ComputeLanguageConfidence(sample, language)
	return Result{
		Language:   language.String(),
		Confidence: confidence,
		Reliable:   confidence >= confidenceFloor,
	}
}
