package news

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestStaticCorpus(t *testing.T) {
	corpus := NewStaticCorpus()
	corpus.now = func() time.Time { return fixedNow }

	articles := corpus.Articles()

	assert.Equal(t, 5, len(articles))
	want := []string{
		"2026-10-15T09:00:00Z",
		"2026-10-15T07:00:00Z",
		"2026-10-15T04:00:00Z",
		"2026-10-15T01:00:00Z",
		"2026-10-14T21:00:00Z",
	}
	for i, a := range articles {
		assert.Equal(t, "Smart Finance", a.Source)
		assert.Equal(t, want[i], a.PublishedAt)
		assert.NotEqual(t, "", a.Title)
		assert.NotEqual(t, "", a.URL)
	}
	assert.Equal(t, "نصائح لحماية مدخراتك من التضخم", articles[0].Title)
}
