package emotion

// lexiconEntry 情绪关键词与权重
type lexiconEntry struct {
	Label    string
	Keywords []string
	Weight   float64
}

// lexicon 情绪词表
// 顺序固定：分数相同时先出现的情绪胜出
var lexicon = []lexiconEntry{
	{
		Label:    "happy",
		Keywords: []string{"happy", "joy", "excited", "great", "wonderful", "amazing", "good", "fantastic", "delighted"},
		Weight:   1.0,
	},
	{
		Label:    "sad",
		Keywords: []string{"sad", "depressed", "down", "unhappy", "miserable", "blue", "heartbroken", "devastated"},
		Weight:   1.0,
	},
	{
		Label:    "anxious",
		Keywords: []string{"anxious", "worried", "nervous", "stressed", "overwhelmed", "panicked", "fearful"},
		Weight:   1.0,
	},
	{
		Label:    "angry",
		Keywords: []string{"angry", "mad", "furious", "annoyed", "irritated", "frustrated", "enraged"},
		Weight:   1.0,
	},
	{
		Label:    "excited",
		Keywords: []string{"excited", "thrilled", "ecstatic", "elated", "enthusiastic", "pumped"},
		Weight:   0.8,
	},
	{
		Label:    "frustrated",
		Keywords: []string{"frustrated", "annoyed", "irritated", "bothered", "disappointed"},
		Weight:   0.9,
	},
	{
		Label:    "calm",
		Keywords: []string{"calm", "peaceful", "serene", "tranquil", "relaxed", "at ease"},
		Weight:   0.7,
	},
	{
		Label:    "stressed",
		Keywords: []string{"stressed", "overwhelmed", "pressured", "strained", "tense"},
		Weight:   0.9,
	},
	{
		Label:    "grateful",
		Keywords: []string{"grateful", "thankful", "appreciative", "blessed", "fortunate"},
		Weight:   0.8,
	},
	{
		Label:    "neutral",
		Keywords: []string{"okay", "fine", "alright", "normal", "usual"},
		Weight:   0.5,
	},
}

// copingStrategies 按情绪分类的应对建议
var copingStrategies = map[string][]string{
	"happy": {
		"Share your joy with others",
		"Practice gratitude journaling",
		"Document this moment",
		"Express your happiness through creativity",
		"Help someone else feel good",
	},
	"sad": {
		"Take a walk in nature",
		"Listen to uplifting music",
		"Practice deep breathing exercises",
		"Talk to a friend or loved one",
		"Engage in gentle physical activity",
		"Write about your feelings",
	},
	"anxious": {
		"Try the 4-7-8 breathing technique",
		"Write down your worries",
		"Practice progressive muscle relaxation",
		"Take a short break and stretch",
		"Use grounding techniques (5-4-3-2-1)",
		"Limit caffeine and screen time",
	},
	"angry": {
		"Count to 10 slowly",
		"Take deep breaths",
		"Go for a walk",
		"Write down what's bothering you",
		"Use physical exercise to release tension",
		"Practice mindfulness meditation",
	},
	"excited": {
		"Channel your energy into productive activities",
		"Share your excitement with others",
		"Document your goals and plans",
		"Practice patience and planning",
	},
	"frustrated": {
		"Take a step back and reassess",
		"Break down problems into smaller parts",
		"Ask for help or clarification",
		"Practice self-compassion",
	},
	"calm": {
		"Maintain this peaceful state",
		"Practice mindfulness",
		"Engage in gentle activities",
		"Share your calm with others",
	},
	"stressed": {
		"Prioritize your tasks",
		"Take regular breaks",
		"Practice time management",
		"Seek support from others",
		"Use stress-reduction techniques",
	},
	"grateful": {
		"Express your gratitude to others",
		"Keep a gratitude journal",
		"Practice acts of kindness",
		"Reflect on positive experiences",
	},
	"neutral": {
		"Practice mindfulness",
		"Take a moment to check in with yourself",
		"Consider what would make you feel better",
		"Engage in activities you enjoy",
	},
}
