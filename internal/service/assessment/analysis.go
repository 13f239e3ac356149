package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/kaptinlin/jsonrepair"

	"github.com/wellmind/campus-care/internal/model"
)

// PersonalizedPlan 个性化支持计划
type PersonalizedPlan struct {
	ImmediateActions []string `json:"immediateActions"`
	ShortTermGoals   []string `json:"shortTermGoals"`
	LongTermSupport  []string `json:"longTermSupport"`
	CopingStrategies []string `json:"copingStrategies"`
}

// ConversationContext 后续对话的上下文提示
type ConversationContext struct {
	EmotionalState     string   `json:"emotionalState"`
	CommunicationStyle string   `json:"communicationStyle"`
	KeyTriggers        []string `json:"keyTriggers"`
}

// Analysis 预评估的 AI 分析结果
type Analysis struct {
	RiskLevel           string              `json:"riskLevel"`
	RiskScore           int                 `json:"riskScore"`
	KeyFindings         []string            `json:"keyFindings"`
	PrimaryConcerns     []string            `json:"primaryConcerns"`
	Recommendations     []string            `json:"recommendations"`
	PersonalizedPlan    PersonalizedPlan    `json:"personalizedPlan"`
	CommunicationStyle  string              `json:"communicationStyle"`
	PriorityAreas       []string            `json:"priorityAreas"`
	ConversationContext ConversationContext `json:"conversationContext"`
}

const analysisPromptTemplate = `As a mental health professional, analyze this teacher's pre-assessment data and provide a comprehensive analysis:

Assessment Data:
%s

Please provide a detailed analysis including:
1. Risk level assessment (low/moderate/high/critical) based on scores
2. Risk score (0-100) calculated from responses
3. Key findings from the assessment responses
4. Primary concerns identified from the data
5. Specific recommendations for immediate support
6. Personalized support plan with:
   - Immediate actions to take today
   - Short-term goals for the next 2-4 weeks
   - Long-term support strategies
   - Specific coping strategies tailored to their responses
7. Recommended communication style for AI interactions (supportive/gentle/direct/encouraging)
8. Priority areas to focus on based on highest scores
9. Conversation context including:
   - Current emotional state description
   - Preferred communication approach
   - Key triggers to be mindful of

Focus on teacher-specific stressors like classroom management, workload, student concerns, and work-life balance.

Respond in valid JSON format with keys: riskLevel, riskScore, keyFindings, primaryConcerns, recommendations, personalizedPlan (immediateActions, shortTermGoals, longTermSupport, copingStrategies), communicationStyle, priorityAreas, conversationContext (emotionalState, communicationStyle, keyTriggers).`

// analyze 调用 LLM 分析评估答卷，失败时返回保守的兜底分析
func analyze(ctx context.Context, chatModel einomodel.ChatModel, req *SubmitRequest) *Analysis {
	if chatModel == nil {
		return fallbackAnalysis()
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fallbackAnalysis()
	}

	messages := []*schema.Message{
		{Role: schema.User, Content: fmt.Sprintf(analysisPromptTemplate, string(data))},
	}

	resp, err := chatModel.Generate(ctx, messages)
	if err != nil {
		log.Printf("Warning: assessment analysis failed, using fallback: %v", err)
		return fallbackAnalysis()
	}

	analysis, err := parseAnalysis(resp.Content)
	if err != nil {
		log.Printf("Warning: failed to parse analysis output, using fallback: %v", err)
		return fallbackAnalysis()
	}

	return analysis
}

// parseAnalysis 解析模型输出的 JSON，必要时先修复再解析
func parseAnalysis(content string) (*Analysis, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nil, fmt.Errorf("invalid analysis json: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &analysis); err != nil {
			return nil, fmt.Errorf("invalid analysis json after repair: %w", err)
		}
	}

	switch analysis.RiskLevel {
	case model.RiskLow, model.RiskModerate, model.RiskHigh, model.RiskCritical:
	default:
		analysis.RiskLevel = model.RiskModerate
	}

	return &analysis, nil
}

// fallbackAnalysis 模型不可用时的保守分析结果
func fallbackAnalysis() *Analysis {
	return &Analysis{
		RiskLevel:       model.RiskModerate,
		RiskScore:       50,
		KeyFindings:     []string{"Assessment completed", "Requires professional review"},
		PrimaryConcerns: []string{"Work stress", "General wellness"},
		Recommendations: []string{"Continue monitoring", "Seek professional support if needed"},
		PersonalizedPlan: PersonalizedPlan{
			ImmediateActions: []string{"Take time for self-care", "Practice deep breathing"},
			ShortTermGoals:   []string{"Establish daily wellness routine", "Improve work-life balance"},
			LongTermSupport:  []string{"Regular check-ins with support system", "Professional counseling if needed"},
			CopingStrategies: []string{"Mindfulness exercises", "Regular breaks", "Stress management techniques"},
		},
		CommunicationStyle: "supportive",
		PriorityAreas:      []string{"General wellness", "Stress management"},
		ConversationContext: ConversationContext{
			EmotionalState:     "Managing daily stress",
			CommunicationStyle: "supportive",
			KeyTriggers:        []string{"Work overload", "Time pressure"},
		},
	}
}
