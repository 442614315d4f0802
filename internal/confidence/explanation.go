package confidence

import "fmt"

// Explain builds the user-facing sentence for a verdict. Unknown levels are
// explained as low.
func Explain(level Level, m Metrics) string {
	total := m.TotalRelevant()

	switch level {
	case High:
		if m.HighRelevanceCount >= 2 {
			return fmt.Sprintf("High confidence because multiple files (%d) contain information that directly answers your question. "+
				"The answer is consistent across sources, making it reliable.", m.HighRelevanceCount)
		}
		return fmt.Sprintf("High confidence because a primary source directly answers your question, "+
			"and %d additional file(s) provide supporting context.", m.MediumRelevanceCount)

	case Medium:
		if m.HighRelevanceCount == 1 {
			return "Medium confidence because only one file directly addresses this question. " +
				"Without additional sources to verify, the answer may be incomplete."
		}
		return fmt.Sprintf("Medium confidence because %d file(s) contain related information, "+
			"but none provide a complete or authoritative answer.", total)
	}

	switch {
	case m.FilesInScope == 0:
		return "Low confidence because no files are in the current search scope. " +
			"Please select files or change the scope."
	case total == 0:
		return fmt.Sprintf("Low confidence because none of the %d files reviewed contain relevant information. "+
			"The answer may require documents not in the current scope.", m.FilesReviewed)
	}
	return "Low confidence because very limited relevant content was found in the current scope."
}
