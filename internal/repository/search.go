package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term as a literal
// substring. The empty term matches every row.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func nonNilGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}
