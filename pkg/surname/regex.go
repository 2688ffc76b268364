package surname

import (
	"regexp"
)

var (
	// "/van der Berg/": lowercase particles of up to four letters become
	// SPFX, the rest SURN.
	reSpfxSurn = regexp.MustCompile(
		`(?P<NAME>/(?P<SPFX>[a-z’']{0,4}(?: [a-z’']{1,4})*) ?(?P<SURN>[^/]*)/)`,
	)

	// The first surname, which may be empty as in "John //".
	reSurn = regexp.MustCompile(`(?P<NAME>/(?P<SURN>[^/]*)/)`)

	// Two surnames, as in "Gabriel /Garcia/ /Iglesias/".
	reSurns = regexp.MustCompile(`/(?P<SURN1>[^/]*)/ +/(?P<SURN2>[^/]*)/`)

	// The first given name.
	reGivn = regexp.MustCompile(`^(?P<GIVN>[^/ ]+)`)

	// A patronym or matronym at the end of a name.
	rePatronym = regexp.MustCompile(`(?P<GIVN>[^ /]+)(?:sson|sdottir)$`)
)

// match returns named groups of the first match of re in s.
func match(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	res := make(map[string]string)
	for i, n := range re.SubexpNames() {
		if n != "" {
			res[n] = m[i]
		}
	}
	return res, true
}

// filtered drops empty values.
func filtered(n Names) Names {
	for k, v := range n {
		if v == "" {
			delete(n, k)
		}
	}
	return n
}

func empty() Names {
	return Names{TagName: "//"}
}
