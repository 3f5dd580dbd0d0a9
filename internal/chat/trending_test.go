package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrendingTopicsRanksByFrequency(t *testing.T) {
	titles := []string{
		"Top 10 CATS videos",
		"Cats and dogs",
	}

	topics := TrendingTopics(titles, 5)

	assert.NotEmpty(t, topics)
	assert.Equal(t, "cats", topics[0])
	assert.Contains(t, topics, "dogs")
}

func TestTrendingTopicsExcludesStopWords(t *testing.T) {
	titles := []string{
		"The best top videos ever",
		"How and why you watch",
		"gardening with the best",
		"gardening for all",
	}

	topics := TrendingTopics(titles, 5)

	assert.Equal(t, []string{"gardening"}, topics)
}

func TestTrendingTopicsKeepsShortTokens(t *testing.T) {
	titles := []string{"the AI and", "AI for you"}

	assert.Equal(t, []string{"ai"}, TrendingTopics(titles, 5))

	topics := TrendingTopics([]string{"5G vs 4G", "5G rollout"}, 5)
	assert.Equal(t, "5g", topics[0])
}

func TestTrendingTopicsTieBreaksByFirstEncounter(t *testing.T) {
	titles := []string{"alpha beta", "beta alpha gamma"}

	topics := TrendingTopics(titles, 5)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, topics)
}

func TestTrendingTopicsLimit(t *testing.T) {
	titles := []string{"one two three four five six seven"}

	topics := TrendingTopics(titles, 5)
	assert.Len(t, topics, 5)
}

func TestTrendingTopicsEmpty(t *testing.T) {
	assert.Empty(t, TrendingTopics(nil, 5))
	assert.Empty(t, TrendingTopics([]string{"", "the and for"}, 5))
}
