package main

import (
	"fmt"
	"strings"

	"github.com/f1monkey/spellchecker"

	"goatrinik/inventory"
)

// filterChecker suggests the closest inventory filter name for a typo.
var filterChecker *spellchecker.Spellchecker

func loadFilterChecker() {
	sc, err := spellchecker.New("abcdefghijklmnopqrstuvwxyz", spellchecker.WithMaxErrors(2))
	if err != nil {
		logWarn("filter names: %v", err)
		filterChecker = nil
		return
	}
	sc.Add(inventory.FilterNames[:]...)
	filterChecker = sc
}

func suggestFilter(word string) string {
	if filterChecker == nil {
		return ""
	}
	suggestions, err := filterChecker.Suggest(word, 1)
	if err != nil || len(suggestions) == 0 {
		return ""
	}
	return suggestions[0]
}

// checkFilterNames lowercases words, keeps the known filter names and
// describes every unknown one.
func checkFilterNames(words []string) (known []string, problems []string) {
	for _, w := range words {
		w = strings.ToLower(w)
		if isFilterName(w) {
			known = append(known, w)
			continue
		}
		if s := suggestFilter(w); s != "" {
			problems = append(problems, fmt.Sprintf("unknown inventory filter %q, did you mean %q?", w, s))
		} else {
			problems = append(problems, fmt.Sprintf("unknown inventory filter %q", w))
		}
	}
	return known, problems
}

func isFilterName(w string) bool {
	for _, n := range inventory.FilterNames {
		if n == w {
			return true
		}
	}
	return false
}
