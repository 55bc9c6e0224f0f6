package models

import "strings"

var genreCutset = strings.NewReplacer("{", "", "}", "", `"`, "")

// ParseGenres turns a delimited genre blob such as `{"Jazz","Reggae"}` or
// `Jazz, Reggae` into discrete genre names. Braces and double quotes are
// stripped, entries are trimmed, empty entries and repeats are dropped and
// first-seen order is kept. Clean input round-trips unchanged.
func ParseGenres(raw string) []string {
	genres := []string{}
	seen := map[string]bool{}
	for _, part := range strings.Split(genreCutset.Replace(raw), ",") {
		g := strings.TrimSpace(part)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}
	return genres
}

// NormalizeGenres applies ParseGenres to each submitted value, so both
// repeated form fields and a single comma separated field are accepted.
func NormalizeGenres(values []string) []string {
	return ParseGenres(strings.Join(values, ","))
}
