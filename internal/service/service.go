package service

import (
	"context"
	"fmt"
	"log"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/redis/go-redis/v9"

	"github.com/wellmind/campus-care/internal/config"
	"github.com/wellmind/campus-care/internal/repository"
	"github.com/wellmind/campus-care/internal/service/assessment"
	"github.com/wellmind/campus-care/internal/service/auth"
	"github.com/wellmind/campus-care/internal/service/chat"
	"github.com/wellmind/campus-care/internal/service/profile"
	"github.com/wellmind/campus-care/internal/service/responder"
	"github.com/wellmind/campus-care/internal/service/template"
)

// Services 服务集合
type Services struct {
	Auth       *auth.Service
	Profile    *profile.Service
	Chat       *chat.Service
	Template   *template.Service
	Assessment *assessment.Service

	// 配置
	Config *config.Config

	// 回复选择组件
	Corpus   *responder.Corpus
	Selector *responder.Selector

	// 用于预评估分析的 ChatModel
	ChatModel einomodel.ChatModel
}

// NewServices 创建所有服务
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	ctx := context.Background()

	// 创建 ChatModel（用于预评估分析，失败时走兜底分析）
	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		log.Printf("Warning: failed to create chat model: %v", err)
	}

	// 创建语料与回复选择器
	corpus := responder.NewCorpus(cfg.Chat.CorpusPath)
	selector := responder.NewSelector(repo.Template, corpus, cfg.Chat.TemplateLimit)

	// 验证码存储
	codes := auth.NewVerificationStore(redisClient)

	return &Services{
		Auth:       auth.NewService(repo, codes),
		Profile:    profile.NewService(repo),
		Chat:       chat.NewService(repo, selector, cfg.Chat.SessionPageSize),
		Template:   template.NewService(repo),
		Assessment: assessment.NewService(repo, chatModel),

		Config:    cfg,
		Corpus:    corpus,
		Selector:  selector,
		ChatModel: chatModel,
	}, nil
}

// newChatModel 创建 ChatModel
func newChatModel(ctx context.Context, cfg *config.Config) (einomodel.ChatModel, error) {
	aiCfg := cfg.AI

	var apiKey, baseURL, modelName string

	switch aiCfg.Provider {
	case "openai":
		apiKey = aiCfg.OpenAI.APIKey
		baseURL = aiCfg.OpenAI.BaseURL
		modelName = aiCfg.OpenAI.Model
	case "alibaba", "qwen", "dashscope":
		apiKey = aiCfg.Alibaba.AccessKeySecret
		baseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
		modelName = aiCfg.Alibaba.Model
	case "deepseek":
		apiKey = aiCfg.DeepSeek.APIKey
		baseURL = aiCfg.DeepSeek.BaseURL
		modelName = aiCfg.DeepSeek.Model
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", aiCfg.Provider)
	}

	if apiKey == "" {
		return nil, fmt.Errorf("api_key is required for provider: %s", aiCfg.Provider)
	}

	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   modelName,
	})
}
