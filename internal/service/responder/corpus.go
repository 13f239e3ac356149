package responder

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Example 语料中的一条咨询对话样本
type Example struct {
	ConvoID         string
	EmotionType     string
	ProblemType     string
	Situation       string
	UserText        string
	CounselorFull   string
	Strategy        string
	Empathy         float64
	Relevance       float64
	UserTurnEmotion string
}

// Candidate 候选回复，按情绪与问题类型分组后保留的高质量样本
type Candidate struct {
	Emotion     string
	ProblemType string
	Strategy    string
	Response    string
	Empathy     float64
	Relevance   float64
}

// Corpus 训练语料，首次使用时从 CSV 懒加载一次
type Corpus struct {
	path string

	once       sync.Once
	examples   []Example
	candidates []Candidate
	skipped    int
}

// NewCorpus 创建语料加载器，path 为 CSV 文件路径
func NewCorpus(path string) *Corpus {
	return &Corpus{path: path}
}

// ensureLoaded 确保语料已加载，文件缺失或损坏时降级为空语料
func (c *Corpus) ensureLoaded() {
	c.once.Do(func() {
		if err := c.load(); err != nil {
			log.Printf("Warning: failed to load response corpus from %s: %v", c.path, err)
		}
	})
}

// load 解析 CSV，按表头列名映射字段，跳过缺失关键字段的行
func (c *Corpus) load() error {
	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: corpus file not found at %s, falling back to built-in responses", c.path)
			return nil
		}
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			log.Printf("Warning: corpus file %s is empty", c.path)
			return nil
		}
		return err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	get := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	getScore := func(record []string, name string) float64 {
		v, err := strconv.ParseFloat(get(record, name), 64)
		if err != nil || v == 0 {
			return 3
		}
		return v
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("Warning: skipping corpus line %d: %v", line, err)
			c.skipped++
			continue
		}

		example := Example{
			ConvoID:         get(record, "convo_id"),
			EmotionType:     get(record, "emotion_type"),
			ProblemType:     get(record, "problem_type"),
			Situation:       get(record, "situation"),
			UserText:        get(record, "user_text"),
			CounselorFull:   get(record, "counselor_full"),
			Strategy:        get(record, "strategy"),
			Empathy:         getScore(record, "empathy"),
			Relevance:       getScore(record, "relevance"),
			UserTurnEmotion: get(record, "user_turn_emotion"),
		}

		if example.CounselorFull == "" || example.UserText == "" {
			c.skipped++
			continue
		}

		c.examples = append(c.examples, example)
	}

	c.buildCandidates()
	log.Printf("Loaded %d corpus examples (%d skipped), %d response candidates",
		len(c.examples), c.skipped, len(c.candidates))
	return nil
}

// buildCandidates 按 (情绪, 问题类型) 分组，每组按共情+相关性倒序保留前 5 条
func (c *Corpus) buildCandidates() {
	groups := make(map[string][]Candidate)
	var order []string

	for _, example := range c.examples {
		key := example.EmotionType + "_" + example.ProblemType
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], Candidate{
			Emotion:     example.EmotionType,
			ProblemType: example.ProblemType,
			Strategy:    example.Strategy,
			Response:    example.CounselorFull,
			Empathy:     example.Empathy,
			Relevance:   example.Relevance,
		})
	}

	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Empathy+group[i].Relevance > group[j].Empathy+group[j].Relevance
		})
		if len(group) > 5 {
			group = group[:5]
		}
		c.candidates = append(c.candidates, group...)
	}
}

// Candidates 返回全部候选回复
func (c *Corpus) Candidates() []Candidate {
	c.ensureLoaded()
	return c.candidates
}

// Size 返回已加载样本数
func (c *Corpus) Size() int {
	c.ensureLoaded()
	return len(c.examples)
}

// Skipped 返回因缺失字段或解析失败被跳过的行数
func (c *Corpus) Skipped() int {
	c.ensureLoaded()
	return c.skipped
}

// CopingStrategies 从高质量样本中提取指定情绪或问题类型的应对策略
// 仅采纳共情和相关性均不低于 4 的样本，排除单纯的提问策略
func (c *Corpus) CopingStrategies(emotion, problemType string) []string {
	c.ensureLoaded()

	seen := make(map[string]bool)
	var strategies []string

	for _, example := range c.examples {
		if !strings.EqualFold(example.EmotionType, emotion) &&
			!strings.EqualFold(example.ProblemType, problemType) {
			continue
		}
		if example.Empathy < 4 || example.Relevance < 4 {
			continue
		}
		if example.Strategy == "" || example.Strategy == "Question" {
			continue
		}
		if !seen[example.Strategy] {
			seen[example.Strategy] = true
			strategies = append(strategies, example.Strategy)
		}
	}

	return strategies
}
