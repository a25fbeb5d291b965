package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesDomain(t *testing.T) {
	assert.True(t, MatchesDomain("https://a.example.com/f.sql", "example.com"))
	assert.True(t, MatchesDomain("https://example.com/f.sql", "example.com"))
	assert.False(t, MatchesDomain("https://b.other.com/f.sql", "example.com"))
	// Suffix match must respect label boundaries.
	assert.False(t, MatchesDomain("https://notexample.com/f.sql", "example.com"))
	// Empty filter retains everything.
	assert.True(t, MatchesDomain("https://anything.net/x", ""))
}

func TestFilterByDomain(t *testing.T) {
	urls := []string{
		"https://a.example.com/one.sql",
		"https://b.other.com/two.sql",
	}

	assert.Equal(t, []string{"https://a.example.com/one.sql"}, FilterByDomain(urls, "example.com"))
	assert.Equal(t, urls, FilterByDomain(urls, ""))
}
