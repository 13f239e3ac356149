package responder

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
)

// mockTemplateRepository Mock Template Repository
type mockTemplateRepository struct {
	templates []*model.ResponseTemplate
	findErr   error
}

func (m *mockTemplateRepository) Create(template *model.ResponseTemplate) error {
	m.templates = append(m.templates, template)
	return nil
}

func (m *mockTemplateRepository) FindActiveByEmotion(emotion string, limit int) ([]*model.ResponseTemplate, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	result := make([]*model.ResponseTemplate, 0)
	for _, template := range m.templates {
		if template.Emotion == emotion && template.IsActive {
			result = append(result, template)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (m *mockTemplateRepository) List() ([]*model.ResponseTemplate, error) {
	return m.templates, nil
}

func (m *mockTemplateRepository) Count() (int64, error) {
	return int64(len(m.templates)), nil
}

var _ repository.TemplateRepository = (*mockTemplateRepository)(nil)

// emptyCorpus 指向不存在文件的空语料
func emptyCorpus(t *testing.T) *Corpus {
	t.Helper()
	return NewCorpus(filepath.Join(t.TempDir(), "missing.csv"))
}

func TestSelectFromTemplates(t *testing.T) {
	repo := &mockTemplateRepository{
		templates: []*model.ResponseTemplate{
			{
				ID:           "t1",
				Emotion:      "sad",
				ResponseType: model.ResponseTypeComfort,
				Content:      "I'm sorry you're feeling down.",
				CopingStrategies: model.StringList{
					"Take a walk in nature",
				},
				IsActive: true,
				Priority: 1,
			},
		},
	}

	selector := NewSelector(repo, emptyCorpus(t), 3)
	selection, err := selector.Select("I feel sad", "sad")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if selection == nil {
		t.Fatal("Select() returned nil")
	}
	if selection.Source != SourceTemplate {
		t.Errorf("Source = %s, want %s", selection.Source, SourceTemplate)
	}
	if selection.Content != "I'm sorry you're feeling down." {
		t.Errorf("Content = %q, want template content", selection.Content)
	}
	if selection.ResponseType != model.ResponseTypeComfort {
		t.Errorf("ResponseType = %s, want %s", selection.ResponseType, model.ResponseTypeComfort)
	}
	if len(selection.CopingStrategies) != 1 || selection.CopingStrategies[0] != "Take a walk in nature" {
		t.Errorf("CopingStrategies = %v, want template strategies", selection.CopingStrategies)
	}
}

func TestSelectTemplateWithoutStrategies(t *testing.T) {
	repo := &mockTemplateRepository{
		templates: []*model.ResponseTemplate{
			{
				ID:           "t1",
				Emotion:      "anxious",
				ResponseType: model.ResponseTypeGuidance,
				Content:      "Let's slow down together.",
				IsActive:     true,
			},
		},
	}

	selector := NewSelector(repo, emptyCorpus(t), 3)
	selection, err := selector.Select("so anxious", "anxious")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if selection.Source != SourceTemplate {
		t.Fatalf("Source = %s, want %s", selection.Source, SourceTemplate)
	}
	// 模板未配置策略时回退到情绪词表的建议
	if len(selection.CopingStrategies) == 0 {
		t.Error("CopingStrategies is empty, want emotion defaults")
	}
}

func TestSelectFromCorpus(t *testing.T) {
	repo := &mockTemplateRepository{}
	corpus := NewCorpus(writeTestCorpus(t, testCorpusCSV))

	selector := NewSelector(repo, corpus, 3)
	selection, err := selector.Select("I can't sleep before exams and I'm worried", "anxious")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if selection == nil {
		t.Fatal("Select() returned nil")
	}
	if selection.Source != SourceCorpus {
		t.Errorf("Source = %s, want %s", selection.Source, SourceCorpus)
	}
	if selection.Content == "" {
		t.Error("Content is empty")
	}
	if selection.ResponseType == "" {
		t.Error("ResponseType is empty")
	}
	if len(selection.CopingStrategies) == 0 {
		t.Error("CopingStrategies is empty")
	}
}

func TestSelectFallback(t *testing.T) {
	tests := []struct {
		name    string
		repo    *mockTemplateRepository
		emotion string
	}{
		{
			name:    "no templates and no corpus",
			repo:    &mockTemplateRepository{},
			emotion: "sad",
		},
		{
			name:    "unknown emotion",
			repo:    &mockTemplateRepository{},
			emotion: "bewildered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewSelector(tt.repo, emptyCorpus(t), 3)
			selection, err := selector.Select("hello there", tt.emotion)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			if selection == nil {
				t.Fatal("Select() returned nil")
			}
			if selection.Source != SourceFallback {
				t.Errorf("Source = %s, want %s", selection.Source, SourceFallback)
			}
			if selection.Content != fallbackFor(tt.emotion) {
				t.Errorf("Content = %q, want built-in fallback", selection.Content)
			}
			if selection.ResponseType != "Empathetic Support" {
				t.Errorf("ResponseType = %s, want Empathetic Support", selection.ResponseType)
			}
			if len(selection.CopingStrategies) == 0 {
				t.Error("CopingStrategies is empty")
			}
		})
	}
}

func TestSelectTemplateStoreFailure(t *testing.T) {
	repo := &mockTemplateRepository{findErr: errors.New("pq: connection refused")}
	corpus := NewCorpus(writeTestCorpus(t, testCorpusCSV))

	// 模板库查询失败必须中止选择，哪怕语料和兜底都可用
	selector := NewSelector(repo, corpus, 3)
	selection, err := selector.Select("I feel anxious about my exam", "anxious")

	if err == nil {
		t.Fatal("Select() error = nil, want template store failure")
	}
	if !errors.Is(err, repo.findErr) {
		t.Errorf("Select() error = %v, want wrapped store error", err)
	}
	if selection != nil {
		t.Errorf("Select() selection = %+v, want nil on store failure", selection)
	}
}

func TestSelectDetectsEmotionWhenEmpty(t *testing.T) {
	selector := NewSelector(&mockTemplateRepository{}, emptyCorpus(t), 3)
	selection, err := selector.Select("I am so happy today", "")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if selection.Content != fallbackFor("happy") {
		t.Errorf("Content = %q, want happy fallback after detection", selection.Content)
	}
}

func TestSelectIdempotent(t *testing.T) {
	repo := &mockTemplateRepository{}
	corpus := NewCorpus(writeTestCorpus(t, testCorpusCSV))
	selector := NewSelector(repo, corpus, 3)

	first, err := selector.Select("I feel anxious about my exam", "anxious")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	second, err := selector.Select("I feel anxious about my exam", "anxious")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if first.Content != second.Content {
		t.Errorf("Content differs between identical calls: %q vs %q", first.Content, second.Content)
	}
	if first.Source != second.Source {
		t.Errorf("Source differs between identical calls: %s vs %s", first.Source, second.Source)
	}
}

func TestFallbackFor(t *testing.T) {
	if got := fallbackFor("sad"); got == "" {
		t.Error("fallbackFor(sad) is empty")
	}
	if got := fallbackFor("nonexistent"); got != fallbackResponses["neutral"] {
		t.Errorf("fallbackFor(nonexistent) = %q, want neutral fallback", got)
	}
}

func TestSimilarityScore(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		response string
		want     float64
	}{
		{
			name:     "full overlap",
			message:  "sleep before exams",
			response: "you cannot sleep well before exams",
			want:     1.0,
		},
		{
			name:     "partial overlap",
			message:  "sleep before exams",
			response: "exams are stressful",
			want:     1.0 / 3.0,
		},
		{
			name:     "no overlap",
			message:  "sleep before exams",
			response: "reaching out helps",
			want:     0,
		},
		{
			name:     "empty message",
			message:  "",
			response: "anything",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarityScore(tt.message, tt.response)
			if got != tt.want {
				t.Errorf("similarityScore() = %f, want %f", got, tt.want)
			}
		})
	}
}
