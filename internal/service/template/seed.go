package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wellmind/campus-care/internal/model"
)

// seedTemplates 内置模板种子，覆盖主要情绪
var seedTemplates = []model.ResponseTemplate{
	{
		Emotion:      "happy",
		ResponseType: model.ResponseTypeCelebration,
		Content:      "I'm so glad to hear you're feeling happy! Your positive energy is contagious. What's bringing you this joy today?",
		CopingStrategies: model.StringList{
			"Share your joy with others",
			"Practice gratitude journaling",
			"Document this moment",
			"Express your happiness through creativity",
			"Help someone else feel good",
		},
		Priority: 1,
	},
	{
		Emotion:      "happy",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "It's wonderful that you're in such a positive mood! How can we make the most of this good energy?",
		CopingStrategies: model.StringList{
			"Channel your energy into productive activities",
			"Share your excitement with others",
			"Document your goals and plans",
			"Practice patience and planning",
		},
		Priority: 2,
	},
	{
		Emotion:      "sad",
		ResponseType: model.ResponseTypeComfort,
		Content:      "I'm sorry to hear you're feeling down. It's completely okay to feel sad sometimes. I'm here to listen and support you. What's on your mind?",
		CopingStrategies: model.StringList{
			"Take a walk in nature",
			"Listen to uplifting music",
			"Practice deep breathing exercises",
			"Talk to a friend or loved one",
			"Engage in gentle physical activity",
			"Write about your feelings",
		},
		Priority: 1,
	},
	{
		Emotion:      "sad",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "I understand that sadness can feel overwhelming. Remember that this feeling won't last forever. What would help you feel a little better right now?",
		CopingStrategies: model.StringList{
			"Practice self-compassion",
			"Engage in activities you usually enjoy",
			"Reach out to someone you trust",
			"Consider professional support if needed",
		},
		Priority: 2,
	},
	{
		Emotion:      "anxious",
		ResponseType: model.ResponseTypeComfort,
		Content:      "I can sense that you're feeling anxious. Anxiety can be really overwhelming, but you're not alone in this. Let's take a moment to breathe together.",
		CopingStrategies: model.StringList{
			"Try the 4-7-8 breathing technique",
			"Write down your worries",
			"Practice progressive muscle relaxation",
			"Take a short break and stretch",
			"Use grounding techniques (5-4-3-2-1)",
			"Limit caffeine and screen time",
		},
		Priority: 1,
	},
	{
		Emotion:      "anxious",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "Anxiety often makes things feel bigger than they are. Let's break this down together. What specific worry is on your mind right now?",
		CopingStrategies: model.StringList{
			"Challenge anxious thoughts with evidence",
			"Focus on what you can control",
			"Practice mindfulness meditation",
			"Create a worry time schedule",
		},
		Priority: 2,
	},
	{
		Emotion:      "angry",
		ResponseType: model.ResponseTypeComfort,
		Content:      "I hear your frustration, and it's completely valid to feel angry. Anger is a natural emotion that tells us something isn't right. Let's work through this together.",
		CopingStrategies: model.StringList{
			"Count to 10 slowly",
			"Take deep breaths",
			"Go for a walk",
			"Write down what's bothering you",
			"Use physical exercise to release tension",
			"Practice mindfulness meditation",
		},
		Priority: 1,
	},
	{
		Emotion:      "angry",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "It's natural to feel angry when things don't go as expected. What triggered this feeling? Understanding the source can help us address it constructively.",
		CopingStrategies: model.StringList{
			"Identify the root cause of your anger",
			"Express your feelings assertively",
			"Practice problem-solving strategies",
			"Consider if the situation can be changed",
		},
		Priority: 2,
	},
	{
		Emotion:      "stressed",
		ResponseType: model.ResponseTypeComfort,
		Content:      "I can feel that you're under a lot of stress right now. Stress can be overwhelming, but you're handling it better than you think. Let's take a moment to breathe.",
		CopingStrategies: model.StringList{
			"Prioritize your tasks",
			"Take regular breaks",
			"Practice time management",
			"Seek support from others",
			"Use stress-reduction techniques",
		},
		Priority: 1,
	},
	{
		Emotion:      "stressed",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "When stress feels overwhelming, it helps to break things down into smaller, manageable pieces. What's the most pressing concern right now?",
		CopingStrategies: model.StringList{
			"Create a priority list",
			"Delegate tasks when possible",
			"Set realistic expectations",
			"Practice stress management techniques",
		},
		Priority: 2,
	},
	{
		Emotion:      "grateful",
		ResponseType: model.ResponseTypeCelebration,
		Content:      "It's beautiful that you're feeling grateful! Gratitude is such a powerful emotion that can transform our perspective. What are you thankful for today?",
		CopingStrategies: model.StringList{
			"Express your gratitude to others",
			"Keep a gratitude journal",
			"Practice acts of kindness",
			"Reflect on positive experiences",
		},
		Priority: 1,
	},
	{
		Emotion:      "calm",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "It's wonderful that you're feeling calm and peaceful. This is a great state to be in for reflection and growth. How can we make the most of this peaceful energy?",
		CopingStrategies: model.StringList{
			"Maintain this peaceful state",
			"Practice mindfulness",
			"Engage in gentle activities",
			"Share your calm with others",
		},
		Priority: 1,
	},
	{
		Emotion:      "neutral",
		ResponseType: model.ResponseTypeGuidance,
		Content:      "How are you really feeling today? Sometimes when we feel neutral, it's a good opportunity to check in with ourselves more deeply.",
		CopingStrategies: model.StringList{
			"Practice mindfulness",
			"Take a moment to check in with yourself",
			"Consider what would make you feel better",
			"Engage in activities you enjoy",
		},
		Priority: 1,
	},
}

// SeedResult 种子执行结果
type SeedResult struct {
	Seeded bool `json:"seeded"`
	Count  int  `json:"count"`
}

// Seed 写入内置模板，表中已有数据时不做任何修改
func (s *Service) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.repo.Template.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return &SeedResult{Seeded: false, Count: int(count)}, nil
	}

	for i := range seedTemplates {
		template := seedTemplates[i]
		template.ID = uuid.New().String()
		template.IsActive = true
		if err := s.repo.Template.Create(&template); err != nil {
			return nil, fmt.Errorf("failed to seed template for %s: %w", template.Emotion, err)
		}
	}

	return &SeedResult{Seeded: true, Count: len(seedTemplates)}, nil
}
