package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"finpulse/internal/domain/model"
)

const (
	// referenceSalary is the monthly salary, in riyals, used to illustrate purchasing-power loss.
	referenceSalary = 10000.0
	maxHeadlines    = 3
	headlineSep     = " | "
	noNewsHeadline  = "لا توجد أخبار هامة"
)

func buildInsightPrompt(reading model.InflationReading, headlines string) string {
	rate := formatRate(reading.Current)

	var builder strings.Builder
	builder.WriteString("أنت محلل مالي خبير ومختصر جداً. لا تستخدم عبارات ترحيبية.\n\n")
	builder.WriteString("البيانات:\n")
	builder.WriteString(fmt.Sprintf("- التضخم: %s%%\n", rate))
	builder.WriteString(fmt.Sprintf("- الأخبار: %s\n\n", headlines))
	builder.WriteString("المطلوب (إجابة مباشرة فوراً):\n\n")
	builder.WriteString("1. 📉 **حقيقة أموالك:**\n")
	builder.WriteString("احسب بدقة: كم يخسر راتب 10,000 ريال من قوته الشرائية سنوياً بهذا المعدل؟ (أعطني الرقم فقط).\n\n")
	builder.WriteString("2. 💡 **الإجراء الفوري:**\n")
	builder.WriteString("بناءً على الأخبار والتضخم، أعطني نصيحة واحدة محددة جداً (شراء/بيع/سداد) اليوم. لا تقل \"راقب\" أو \"وفر\"، كن محدداً.\n\n")
	builder.WriteString("3. 🔮 **نظرة المستقبل:**\n")
	builder.WriteString("في جملة واحدة: هل نتجه لركود أم انتعاش؟ ولماذا (بكلمتين)؟\n\n")
	builder.WriteString("4. 🏦 **حكمة القروض:**\n")
	builder.WriteString("هل الوقت مناسب لأخذ قرض اليوم؟ (نعم/لا) ولماذا حسابياً؟\n")
	return builder.String()
}

// fallbackInsight is the commentary used when no model answered.
func fallbackInsight(reading model.InflationReading) string {
	loss := referenceSalary * (reading.Current / 100)
	rate := formatRate(reading.Current)

	lines := []string{
		fmt.Sprintf("1. 📉 **حقيقة أموالك:** راتب 10,000 يخسر %.0f ريال سنوياً من قيمته الحقيقية.", loss),
		"2. 💡 **الإجراء الفوري:** فعّل مفتاح AI للحصول على نصيحة ذكية مخصصة.",
		fmt.Sprintf("3. 🔮 **نظرة المستقبل:** التضخم %s%% يتطلب حماية مدخراتك بأصول حقيقية.", rate),
		fmt.Sprintf("4. 🏦 **حكمة القروض:** الفائدة الحقيقية = الفائدة الاسمية - %s%%. احسبها جيداً.", rate),
	}
	return strings.Join(lines, "\n")
}

func joinHeadlines(articles []model.NewsArticle) string {
	titles := make([]string, 0, maxHeadlines)
	for _, a := range articles {
		if len(titles) == maxHeadlines {
			break
		}
		if title := strings.TrimSpace(a.Title); title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) == 0 {
		return noNewsHeadline
	}
	return strings.Join(titles, headlineSep)
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
