package chat

import (
	"regexp"
	"sort"
	"strings"
)

var wordToken = regexp.MustCompile(`[a-z0-9]+`)

// Common filler words that say nothing about what a video is about. Short
// topical tokens ("ai", "vr", "5g") are kept, so fillers are listed
// explicitly down to single characters.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "what": {}, "when": {}, "where": {},
	"why": {}, "how": {}, "who": {}, "which": {}, "you": {}, "your": {},
	"our": {}, "are": {}, "was": {}, "were": {}, "will": {}, "can": {},
	"not": {}, "all": {}, "any": {}, "out": {}, "top": {}, "best": {},
	"new": {}, "most": {}, "ever": {}, "video": {}, "videos": {},
	"short": {}, "shorts": {}, "youtube": {}, "watch": {}, "official": {},
	"a": {}, "an": {}, "as": {}, "at": {}, "be": {}, "by": {}, "do": {},
	"i": {}, "in": {}, "is": {}, "it": {}, "my": {}, "no": {}, "of": {},
	"on": {}, "or": {}, "so": {}, "to": {}, "up": {}, "we": {}, "vs": {},
}

// TrendingTopics tokenizes the given titles to lowercase word tokens,
// drops stop words, and returns up to limit tokens ranked by descending
// frequency. Ties keep first-encountered order.
func TrendingTopics(titles []string, limit int) []string {
	counts := make(map[string]int)
	var order []string
	for _, title := range titles {
		for _, token := range wordToken.FindAllString(strings.ToLower(title), -1) {
			if _, stop := stopWords[token]; stop {
				continue
			}
			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
