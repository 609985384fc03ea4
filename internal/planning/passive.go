package planning

import "regexp"

// passivePattern matches "to be" auxiliaries followed by a past participle,
// the common passive construction in resume lines ("was tasked", "is used").
var passivePattern = regexp.MustCompile(`(?i)\b(was|were|is|are|been|being|be)\s+(\w+(?:ed|en))\b`)

// DetectPassiveVoice reports whether the text contains a passive construction
func DetectPassiveVoice(text string) bool {
	return passivePattern.MatchString(text)
}
