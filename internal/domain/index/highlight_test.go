package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight_WrapsMatch(t *testing.T) {
	got := Highlight("React Hooks Guide", "react", "<b>", "</b>")
	assert.Equal(t, "<b>React</b> Hooks Guide", got)
}

func TestHighlight_CaseInsensitive(t *testing.T) {
	got := Highlight("REACT and react", "react", "[", "]")
	assert.Equal(t, "[REACT] and [react]", got)
}

func TestHighlight_MultipleTokens(t *testing.T) {
	got := Highlight("React Hooks Guide", "react guide", "[", "]")
	assert.Equal(t, "[React] Hooks [Guide]", got)
}

func TestHighlight_OverlapsMerged(t *testing.T) {
	// "blog" and "blogging" overlap; markers must not nest.
	got := Highlight("blogging tips", "blogging blog", "[", "]")
	assert.Equal(t, "[blogging] tips", got)
	assert.Equal(t, 1, strings.Count(got, "["))
}

func TestHighlight_Hangul(t *testing.T) {
	got := Highlight("IT 기술 블로그", "블로그", "[", "]")
	assert.Equal(t, "IT 기술 [블로그]", got)
}

func TestHighlight_NoMatchUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", Highlight("plain text", "zzz", "[", "]"))
	assert.Equal(t, "plain text", Highlight("plain text", "", "[", "]"))
}

func TestTruncateContent_ShortUnchanged(t *testing.T) {
	assert.Equal(t, "short", TruncateContent("short", 100))
}

func TestTruncateContent_WordBoundary(t *testing.T) {
	got := TruncateContent("one two three four", 12)
	assert.Equal(t, "one two...", got)
}

func TestTruncateContent_MultiByteSafe(t *testing.T) {
	content := strings.Repeat("가", 50)
	got := TruncateContent(content, 20)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, len(got) <= 23)
	for _, r := range got {
		assert.NotEqual(t, '�', r)
	}
}
