package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"finpulse/internal/adapter/storage"
	"finpulse/internal/domain/fallback"
	"finpulse/internal/domain/model"
)

type insightFixture struct {
	dir string
	cfg InsightConfig
}

func newInsightFixture(t *testing.T) insightFixture {
	t.Helper()
	dir := t.TempDir()
	return insightFixture{
		dir: dir,
		cfg: InsightConfig{
			InflationPath: filepath.Join(dir, "inflation.json"),
			NewsPath:      filepath.Join(dir, "news.json"),
			OutputPath:    filepath.Join(dir, "out", "insights.json"),
			Models:        []string{"model-a", "model-b"},
		},
	}
}

func (f insightFixture) writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func (f insightFixture) run(t *testing.T, completer *stubCompleter) model.InsightRecord {
	t.Helper()
	gen := NewInsightGenerator(completer, storage.NewJSONStore(nil), nopLogger{}, f.cfg)
	gen.now = func() time.Time { return time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC) }

	if err := gen.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(f.cfg.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var record model.InsightRecord
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return record
}

func TestInsightsFallbackWithoutKey(t *testing.T) {
	f := newInsightFixture(t)
	f.writeFile(t, f.cfg.InflationPath, `{"current": 2.5, "change": 0.1}`)
	completer := &stubCompleter{errs: map[string]error{
		"model-a": fallback.Skipped("model-a", "no key"),
		"model-b": fallback.Skipped("model-b", "no key"),
	}}

	record := f.run(t, completer)

	assert.Equal(t, true, strings.Contains(record.Summary, "250 ريال"))
	assert.Equal(t, true, strings.Contains(record.Summary, "التضخم 2.5%"))
	assert.Equal(t, "Smart-AI", record.Model)
	assert.Equal(t, "ar", record.Language)
	assert.Equal(t, "2026-10-15T09:00:00Z", record.Timestamp)
}

func TestInsightsMissingInflationUsesDefault(t *testing.T) {
	f := newInsightFixture(t)
	completer := &stubCompleter{errs: map[string]error{"model-a": errUpstream, "model-b": errUpstream}}

	record := f.run(t, completer)

	assert.Equal(t, true, strings.Contains(record.Summary, "250 ريال"))
	assert.Equal(t, true, strings.Contains(completer.prompts[0], "التضخم: 2.5%"))
}

func TestInsightsMalformedInflationUsesDefault(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "broken json", content: `{"current": `},
		{name: "missing current", content: `{"change": 1.2}`},
		{name: "wrong type", content: `{"current": "high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInsightFixture(t)
			f.writeFile(t, f.cfg.InflationPath, tt.content)

			record := f.run(t, &stubCompleter{errs: map[string]error{"model-a": errUpstream, "model-b": errUpstream}})

			assert.Equal(t, true, strings.Contains(record.Summary, "250 ريال"))
		})
	}
}

func TestInsightsComputesLossFromRate(t *testing.T) {
	f := newInsightFixture(t)
	f.writeFile(t, f.cfg.InflationPath, `{"current": 3.7, "change": 0.4}`)

	record := f.run(t, &stubCompleter{errs: map[string]error{"model-a": errUpstream, "model-b": errUpstream}})

	assert.Equal(t, true, strings.Contains(record.Summary, "370 ريال"))
	assert.Equal(t, true, strings.Contains(record.Summary, "الاسمية - 3.7%"))
}

func TestInsightsStopsAtFirstModelWithText(t *testing.T) {
	f := newInsightFixture(t)
	completer := &stubCompleter{
		errs:    map[string]error{"model-a": errUpstream},
		replies: map[string]string{"model-b": "تحليل النموذج"},
	}
	f.cfg.Models = []string{"model-a", "model-b", "model-c"}

	record := f.run(t, completer)

	assert.Equal(t, "تحليل النموذج", record.Summary)
	assert.Equal(t, []string{"model-a", "model-b"}, completer.calls)
}

func TestInsightsBlankReplyAdvances(t *testing.T) {
	f := newInsightFixture(t)
	completer := &stubCompleter{replies: map[string]string{"model-a": "  ", "model-b": "نص"}}

	record := f.run(t, completer)

	assert.Equal(t, "نص", record.Summary)
	assert.Equal(t, 2, len(completer.calls))
}

func TestInsightsPromptUsesTopThreeHeadlines(t *testing.T) {
	f := newInsightFixture(t)
	f.writeFile(t, f.cfg.NewsPath, `[
		{"title": "أول"}, {"title": "ثاني"}, {"title": "ثالث"}, {"title": "رابع"}
	]`)
	completer := &stubCompleter{replies: map[string]string{"model-a": "ok"}}

	f.run(t, completer)

	assert.Equal(t, true, strings.Contains(completer.prompts[0], "الأخبار: أول | ثاني | ثالث\n"))
	assert.Equal(t, false, strings.Contains(completer.prompts[0], "رابع"))
}

func TestInsightsPromptPlaceholderWithoutNews(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing file"},
		{name: "malformed file", content: `not json`},
		{name: "empty list", content: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInsightFixture(t)
			if tt.content != "" {
				f.writeFile(t, f.cfg.NewsPath, tt.content)
			}
			completer := &stubCompleter{replies: map[string]string{"model-a": "ok"}}

			f.run(t, completer)

			assert.Equal(t, true, strings.Contains(completer.prompts[0], "الأخبار: لا توجد أخبار هامة"))
		})
	}
}

func TestInsightsPropagatesWriteFailure(t *testing.T) {
	gen := NewInsightGenerator(&stubCompleter{}, failingWriter{}, nopLogger{}, InsightConfig{OutputPath: "unused"})

	err := gen.Run(context.Background())

	assert.NotEqual(t, nil, err)
}

func TestFallbackInsightNeverEmpty(t *testing.T) {
	for _, rate := range []float64{0, 2.5, 12.25} {
		text := fallbackInsight(model.InflationReading{Current: rate})
		assert.NotEqual(t, "", strings.TrimSpace(text))
		assert.Equal(t, 4, len(strings.Split(text, "\n")))
	}
}

func TestJoinHeadlinesSkipsBlankTitles(t *testing.T) {
	got := joinHeadlines([]model.NewsArticle{{Title: " "}, {Title: "أ"}, {Title: "ب"}})

	assert.Equal(t, "أ | ب", got)
}
