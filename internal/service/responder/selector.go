package responder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wellmind/campus-care/internal/repository"
	"github.com/wellmind/campus-care/internal/service/emotion"
)

// 回复来源
const (
	SourceTemplate = "template"
	SourceCorpus   = "corpus"
	SourceFallback = "fallback"
)

// Selection 选定的回复
type Selection struct {
	Content          string   `json:"content"`
	ResponseType     string   `json:"responseType"`
	CopingStrategies []string `json:"copingStrategies"`
	Source           string   `json:"source"`
}

// Selector 回复选择器
// 优先级：数据库模板 > 语料相似度匹配 > 内置兜底
type Selector struct {
	templates     repository.TemplateRepository
	corpus        *Corpus
	templateLimit int
}

// NewSelector 创建回复选择器
func NewSelector(templates repository.TemplateRepository, corpus *Corpus, templateLimit int) *Selector {
	if templateLimit <= 0 {
		templateLimit = 3
	}
	return &Selector{
		templates:     templates,
		corpus:        corpus,
		templateLimit: templateLimit,
	}
}

// Select 为用户消息选择一条回复
// 无可用模板或语料时回退到内置兜底，选出的回复永不为 nil；
// 模板存储查询失败返回错误，由调用方中止本轮
func (s *Selector) Select(userMessage, userEmotion string) (*Selection, error) {
	if userEmotion == "" {
		userEmotion = emotion.Detect(userMessage).Emotion
	}

	// 1. 数据库模板
	selection, err := s.fromTemplates(userEmotion)
	if err != nil {
		return nil, err
	}
	if selection != nil {
		return selection, nil
	}

	// 2. 语料相似度匹配
	if selection := s.fromCorpus(userMessage, userEmotion); selection != nil {
		return selection, nil
	}

	// 3. 内置兜底
	return &Selection{
		Content:          fallbackFor(userEmotion),
		ResponseType:     "Empathetic Support",
		CopingStrategies: emotion.Strategies(userEmotion),
		Source:           SourceFallback,
	}, nil
}

// fromTemplates 查询启用的模板，按优先级取最高的一条
// 查询失败与查无模板不同：前者是需要中止的存储故障
func (s *Selector) fromTemplates(userEmotion string) (*Selection, error) {
	templates, err := s.templates.FindActiveByEmotion(userEmotion, s.templateLimit)
	if err != nil {
		return nil, fmt.Errorf("template lookup failed for emotion %s: %w", userEmotion, err)
	}
	if len(templates) == 0 {
		return nil, nil
	}

	template := templates[0]
	strategies := []string(template.CopingStrategies)
	if len(strategies) == 0 {
		strategies = emotion.Strategies(userEmotion)
	}

	return &Selection{
		Content:          template.Content,
		ResponseType:     template.ResponseType,
		CopingStrategies: strategies,
		Source:           SourceTemplate,
	}, nil
}

// fromCorpus 在候选回复中按词重叠度找最相似的一条
func (s *Selector) fromCorpus(userMessage, userEmotion string) *Selection {
	candidates := s.corpus.Candidates()
	if len(candidates) == 0 {
		return nil
	}

	// 优先匹配同情绪的候选，没有则放宽到全部
	matched := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Emotion, userEmotion) {
			matched = append(matched, candidate)
		}
	}
	if len(matched) == 0 {
		matched = candidates
	}

	type scored struct {
		candidate Candidate
		score     float64
	}
	ranked := make([]scored, 0, len(matched))
	for _, candidate := range matched {
		ranked = append(ranked, scored{
			candidate: candidate,
			score:     similarityScore(userMessage, candidate.Response),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	best := ranked[0].candidate

	responseType := best.Strategy
	if responseType == "" {
		responseType = "guidance"
	}

	strategies := s.corpus.CopingStrategies(userEmotion, "general")
	if len(strategies) == 0 {
		strategies = emotion.Strategies(userEmotion)
	}

	return &Selection{
		Content:          best.Response,
		ResponseType:     responseType,
		CopingStrategies: strategies,
		Source:           SourceCorpus,
	}
}

// similarityScore 用户消息词在候选回复中出现的比例
func similarityScore(userMessage, response string) float64 {
	userWords := strings.Fields(strings.ToLower(userMessage))
	responseWords := strings.Fields(strings.ToLower(response))

	wordSet := make(map[string]bool, len(responseWords))
	for _, w := range responseWords {
		wordSet[w] = true
	}

	matches := 0
	for _, w := range userWords {
		if wordSet[w] {
			matches++
		}
	}

	denom := len(userWords)
	if denom < 1 {
		denom = 1
	}
	return float64(matches) / float64(denom)
}
