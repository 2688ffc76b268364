package surname

import "strings"

// suffixRule replaces a word ending.
type suffixRule struct {
	from, to string
}

// inflect rewrites the ending of every word of a surname using the first
// rule that matches the word. Rules with longer suffixes must come first.
func inflect(surname string, rules []suffixRule) string {
	words := strings.Split(surname, " ")
	for i, w := range words {
		for _, r := range rules {
			if strings.HasSuffix(w, r.from) {
				words[i] = strings.TrimSuffix(w, r.from) + r.to
				break
			}
		}
	}
	return strings.Join(words, " ")
}

// inflectName inflects the surname part of a slash-delimited name such as
// "/Kowalski/".
func inflectName(name string, rules []suffixRule) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(name, "/"), "/")
	return "/" + inflect(inner, rules) + "/"
}
