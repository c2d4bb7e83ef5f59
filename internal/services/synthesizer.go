package services

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/you/ytstudio/domain"
)

// Tone modifier tables. Only the clickbait and motivational rows are
// applied to titles today; the rest are reserved for the other tones.
var toneModifiers = map[string][]string{
	domain.ToneClickbait:    {"SHOCKING", "INSANE", "MIND-BLOWING", "CRAZY", "UNBELIEVABLE"},
	domain.ToneEducational:  {"Complete Guide", "Step by Step", "Tutorial", "Explained", "Masterclass"},
	domain.ToneProfessional: {"Strategy", "Framework", "Method", "System", "Approach"},
	domain.ToneHumorous:     {"LOL", "HILARIOUS", "FUNNY", "EPIC FAIL", "ROASTED"},
	domain.ToneMotivational: {"UNSTOPPABLE", "POWERFUL", "INSPIRING", "LIFE-CHANGING", "TRANSFORM"},
}

var genericTags = []string{
	"youtube growth", "content creation", "social media", "online marketing",
	"digital marketing", "seo", "viral content", "engagement",
}

var keywordVolumes = []string{"1K-10K", "10K-100K", "100K-1M", "1M+"}

var keywordDifficulties = []string{"easy", "medium", "hard"}

// SynthesizeTitles produces exactly five scored title candidates from
// fixed templates. Scores are unseeded uniform draws; callers must not
// expect reproducibility.
func SynthesizeTitles(req *domain.GenerationRequest) []domain.TitleSuggestion {
	topic := req.Topic
	baseTitles := []string{
		topic + " - Complete Guide",
		"How to " + strings.ToLower(topic) + " (Step by Step)",
		topic + " | Proven Strategy",
		"The Ultimate " + topic + " Tutorial",
		topic + " - What Nobody Tells You",
	}

	modifiers, ok := toneModifiers[req.Tone]
	if !ok {
		modifiers = toneModifiers[domain.ToneEducational]
	}

	titles := make([]domain.TitleSuggestion, 0, len(baseTitles))
	for i, title := range baseTitles {
		switch req.Tone {
		case domain.ToneClickbait:
			title = modifiers[i%len(modifiers)] + " " + title
		case domain.ToneMotivational:
			title = title + " | " + modifiers[i%len(modifiers)]
		}

		title = truncateTitle(title, req.MaxLength)

		titles = append(titles, domain.TitleSuggestion{
			Title:     title,
			Score:     rand.IntN(30) + 70,
			Emotional: rand.IntN(40) + 60,
			Clarity:   rand.IntN(30) + 70,
			Clickbait: rand.IntN(50) + 50,
		})
	}
	return titles
}

// truncateTitle caps a title at maxLength characters, keeping room for
// the ellipsis marker. A cap of zero (or anything too small to hold the
// marker) means no cap.
func truncateTitle(title string, maxLength int) string {
	if maxLength <= 3 {
		return title
	}
	runes := []rune(title)
	if len(runes) <= maxLength {
		return title
	}
	return string(runes[:maxLength-3]) + "..."
}

// SynthesizeDescription fills the fixed description template. Section
// order and boilerplate are load-bearing: downstream consumers parse
// this exact shape.
func SynthesizeDescription(req *domain.GenerationRequest) string {
	keywords := req.Keywords
	if keywords == "" {
		keywords = req.Topic
	}

	return fmt.Sprintf(`🎯 %s

In this %s, you'll learn everything you need to know about %s. Whether you're a beginner or looking to improve your skills, this comprehensive guide will help you achieve your goals.

🔥 What You'll Learn:
• Key strategies and techniques
• Step-by-step implementation
• Common mistakes to avoid
• Pro tips and best practices
• Real-world examples and case studies

⏰ Timestamps:
00:00 - Introduction
02:30 - Getting Started
05:45 - Core Concepts
10:20 - Advanced Techniques
15:30 - Common Mistakes
18:45 - Final Tips
20:00 - Conclusion

🚀 Ready to take your skills to the next level? Make sure to:
👍 LIKE this video if it helped you
🔔 SUBSCRIBE for more tutorials
💬 COMMENT your questions below
📱 SHARE with your friends

Keywords: %s

📞 Connect with me:
🌐 Website: [Your Website]
📧 Email: [Your Email]
📱 Instagram: @[Your Handle]
🐦 Twitter: @[Your Handle]
💼 LinkedIn: [Your Profile]

#%s #Tutorial #%s

---
📝 Resources mentioned in this video:
• [Resource 1]
• [Resource 2]
• [Resource 3]

🎵 Music: [If applicable]
🎬 Edited with: [Your editing software]

⚠️ Disclaimer: [Add any necessary disclaimers]

Thanks for watching! See you in the next video! 🎬`,
		req.Topic,
		req.VideoType,
		strings.ToLower(req.Topic),
		keywords,
		stripWhitespace(req.Topic),
		capitalize(req.VideoType),
	)
}

// SynthesizeTags builds up to 15 whitespace-free tags: six derived from
// the topic and video type, then the generic growth set. Competition is
// bucketed by two independent draws, first >0.6 meaning high, else
// second >0.3 meaning medium, else low.
func SynthesizeTags(req *domain.GenerationRequest) []domain.TagSuggestion {
	topic := strings.ToLower(req.Topic)
	candidates := []string{
		topic,
		topic + " tutorial",
		topic + " guide",
		"how to " + topic,
		req.VideoType,
		req.VideoType + " tutorial",
	}
	candidates = append(candidates, genericTags...)
	if len(candidates) > 15 {
		candidates = candidates[:15]
	}

	tags := make([]domain.TagSuggestion, 0, len(candidates))
	for _, tag := range candidates {
		tags = append(tags, domain.TagSuggestion{
			Tag:         stripWhitespace(tag),
			Competition: drawCompetition(),
			Trending:    rand.Float64() > 0.7,
		})
	}
	return tags
}

func drawCompetition() string {
	if rand.Float64() > 0.6 {
		return "high"
	}
	if rand.Float64() > 0.3 {
		return "medium"
	}
	return "low"
}

// SynthesizeKeywords produces the ten fixed phrase variants for a topic.
func SynthesizeKeywords(req *domain.GenerationRequest) []domain.KeywordSuggestion {
	topic := strings.ToLower(req.Topic)
	phrases := []string{
		topic,
		topic + " tips",
		topic + " strategy",
		topic + " guide",
		topic + " tutorial",
		"how to " + topic,
		topic + " for beginners",
		topic + " advanced",
		topic + " 2024",
		topic + " step by step",
	}

	keywords := make([]domain.KeywordSuggestion, 0, len(phrases))
	for _, phrase := range phrases {
		keywords = append(keywords, domain.KeywordSuggestion{
			Keyword:    phrase,
			Volume:     keywordVolumes[rand.IntN(len(keywordVolumes))],
			Difficulty: keywordDifficulties[rand.IntN(len(keywordDifficulties))],
			Trending:   rand.Float64() > 0.8,
		})
	}
	return keywords
}

// stripWhitespace removes all internal whitespace from s.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
