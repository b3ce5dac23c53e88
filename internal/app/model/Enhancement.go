package model

// Enhancement is the result of running one audio upload through the
// transcribe-then-enhance pipeline. It is not persisted.
type Enhancement struct {
	OriginalText string
	EnhancedText string
}
