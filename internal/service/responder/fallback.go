package responder

// fallbackResponses 内置兜底回复，语料与模板均不可用时使用
var fallbackResponses = map[string]string{
	"anxious":    "I can sense that you're feeling anxious. It's completely normal to feel this way, and I'm here to listen and support you. Would you like to talk more about what's causing this anxiety?",
	"sad":        "I'm sorry to hear you're feeling down. It's okay to feel sad sometimes, and I want you to know that you're not alone. Would you like to share more about what's on your mind?",
	"angry":      "I hear your frustration, and it's completely valid to feel angry. Sometimes talking about what's bothering us can help. Would you like to discuss what's making you feel this way?",
	"stressed":   "Stress can be really overwhelming, and I understand how difficult it can be to manage. Let's take a moment to breathe together. What's the most pressing concern on your mind right now?",
	"happy":      "It's wonderful that you're feeling good! I'm glad to hear that. What's bringing you this positive energy today?",
	"excited":    "I can feel your excitement! That's fantastic. What's got you feeling so energized?",
	"frustrated": "I understand you're feeling frustrated. That can be really challenging. Would you like to talk about what's causing this frustration?",
	"calm":       "It's great that you're feeling calm. How can I support you in maintaining this peaceful state?",
	"grateful":   "It's beautiful that you're feeling grateful. What are you most thankful for right now?",
	"neutral":    "How are you really feeling today? Sometimes when we feel neutral, it's a good opportunity to check in with ourselves more deeply.",
}

// fallbackFor 返回指定情绪的兜底回复，未知情绪回退到 neutral
func fallbackFor(emotion string) string {
	if content, ok := fallbackResponses[emotion]; ok {
		return content
	}
	return fallbackResponses["neutral"]
}
