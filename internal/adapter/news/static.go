package news

import (
	"time"

	"finpulse/internal/domain/model"
	"finpulse/internal/domain/ports"
)

const staticSource = "Smart Finance"

type cannedArticle struct {
	title       string
	description string
	url         string
	age         time.Duration
}

// The same five tips are served on every run; only their timestamps move with the clock.
var cannedArticles = []cannedArticle{
	{
		title:       "نصائح لحماية مدخراتك من التضخم",
		description: "تعرف على أفضل الطرق للحفاظ على قيمة أموالك في ظل ارتفاع معدلات التضخم",
		url:         "https://www.google.com/search?q=نصائح+لحماية+المدخرات+من+التضخم",
	},
	{
		title:       "كيف تحسب التكلفة الحقيقية للقروض",
		description: "دليل شامل لفهم تأثير التضخم على قروضك والتكاليف الخفية",
		url:         "https://www.google.com/search?q=حساب+التكلفة+الحقيقية+للقروض+مع+التضخم",
		age:         2 * time.Hour,
	},
	{
		title:       "استراتيجيات السداد المبكر للقروض",
		description: "متى يكون السداد المبكر مفيداً ومتى يجب تجنبه",
		url:         "https://www.google.com/search?q=استراتيجيات+السداد+المبكر+للقروض",
		age:         5 * time.Hour,
	},
	{
		title:       "فهم معدلات التضخم وتأثيرها على دخلك",
		description: "تحليل مفصل لكيفية تأثير التضخم على القوة الشرائية للرواتب",
		url:         "https://www.google.com/search?q=تأثير+التضخم+على+الراتب",
		age:         8 * time.Hour,
	},
	{
		title:       "أفضل الممارسات لإدارة الميزانية الشخصية",
		description: "خطوات عملية لتنظيم مصروفاتك وزيادة مدخراتك",
		url:         "https://www.google.com/search?q=إدارة+الميزانية+الشخصية",
		age:         12 * time.Hour,
	},
}

// StaticCorpus is the terminal news fallback. It never returns an empty list.
type StaticCorpus struct {
	now func() time.Time
}

var _ ports.NewsCorpus = (*StaticCorpus)(nil)

// NewStaticCorpus creates a StaticCorpus using the wall clock.
func NewStaticCorpus() *StaticCorpus {
	return &StaticCorpus{now: time.Now}
}

// Articles returns the canned tips stamped relative to the current time.
func (s *StaticCorpus) Articles() []model.NewsArticle {
	now := s.now().UTC()
	articles := make([]model.NewsArticle, 0, len(cannedArticles))
	for _, item := range cannedArticles {
		articles = append(articles, model.NewsArticle{
			Title:       item.title,
			Description: item.description,
			URL:         item.url,
			Source:      staticSource,
			PublishedAt: now.Add(-item.age).Format(time.RFC3339),
		})
	}
	return articles
}
