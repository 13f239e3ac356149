package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
)

// Service 心理预评估服务
type Service struct {
	repo      *repository.Repositories
	chatModel einomodel.ChatModel
}

// NewService 创建评估服务
// chatModel 可以为 nil，此时分析使用兜底结果
func NewService(repo *repository.Repositories, chatModel einomodel.ChatModel) *Service {
	return &Service{repo: repo, chatModel: chatModel}
}

// SubmitRequest 提交预评估问卷，每项 0-3 分
type SubmitRequest struct {
	// 工作与日常状态
	WorkOverwhelmed         int `json:"workOverwhelmed" binding:"gte=0,lte=3"`
	ConcentrationDifficulty int `json:"concentrationDifficulty" binding:"gte=0,lte=3"`
	Procrastination         int `json:"procrastination" binding:"gte=0,lte=3"`
	Irritability            int `json:"irritability" binding:"gte=0,lte=3"`
	LackAccomplishment      int `json:"lackAccomplishment" binding:"gte=0,lte=3"`
	TroubleSwitchingOff     int `json:"troubleSwitchingOff" binding:"gte=0,lte=3"`

	// 情绪状态
	FeelingDown    int `json:"feelingDown" binding:"gte=0,lte=3"`
	LosingInterest int `json:"losingInterest" binding:"gte=0,lte=3"`
	FeelingAnxious int `json:"feelingAnxious" binding:"gte=0,lte=3"`
	MoodSwings     int `json:"moodSwings" binding:"gte=0,lte=3"`
	FeelingGuilty  int `json:"feelingGuilty" binding:"gte=0,lte=3"`

	// 身体与行为变化
	SleepProblems    int `json:"sleepProblems" binding:"gte=0,lte=3"`
	AppetiteChanges  int `json:"appetiteChanges" binding:"gte=0,lte=3"`
	FeelingTired     int `json:"feelingTired" binding:"gte=0,lte=3"`
	PhysicalSymptoms int `json:"physicalSymptoms" binding:"gte=0,lte=3"`
	SubstanceUse     int `json:"substanceUse" binding:"gte=0,lte=3"`
	Withdrawing      int `json:"withdrawing" binding:"gte=0,lte=3"`

	// 想法与安全
	ThoughtsOfHarm       int `json:"thoughtsOfHarm" binding:"gte=0,lte=3"`
	LifeNotWorthLiving   int `json:"lifeNotWorthLiving" binding:"gte=0,lte=3"`
	WorriedAboutStudents int `json:"worriedAboutStudents" binding:"gte=0,lte=3"`

	CopingMechanisms []string `json:"copingMechanisms"`
	Goals            []string `json:"goals"`
}

// TotalScore 问卷总分
func (r *SubmitRequest) TotalScore() int {
	return r.WorkOverwhelmed + r.ConcentrationDifficulty + r.Procrastination +
		r.Irritability + r.LackAccomplishment + r.TroubleSwitchingOff +
		r.FeelingDown + r.LosingInterest + r.FeelingAnxious + r.MoodSwings + r.FeelingGuilty +
		r.SleepProblems + r.AppetiteChanges + r.FeelingTired + r.PhysicalSymptoms +
		r.SubstanceUse + r.Withdrawing +
		r.ThoughtsOfHarm + r.LifeNotWorthLiving + r.WorriedAboutStudents
}

// SubmitResponse 提交结果
type SubmitResponse struct {
	TotalScore int       `json:"totalScore"`
	Analysis   *Analysis `json:"analysis"`
}

// Submit 提交问卷：计算总分，生成 AI 分析，按用户覆盖保存，
// 并标记用户已完成预评估
func (s *Service) Submit(ctx context.Context, userID string, req *SubmitRequest) (*SubmitResponse, error) {
	user, err := s.repo.Auth.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	totalScore := req.TotalScore()
	analysis := analyze(ctx, s.chatModel, req)

	analysisJSON, err := toJSONMap(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	planJSON, err := toJSONMap(analysis.PersonalizedPlan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode personalized plan: %w", err)
	}

	assessment := &model.PreAssessment{
		UserID: userID,

		WorkOverwhelmed:         req.WorkOverwhelmed,
		ConcentrationDifficulty: req.ConcentrationDifficulty,
		Procrastination:         req.Procrastination,
		Irritability:            req.Irritability,
		LackAccomplishment:      req.LackAccomplishment,
		TroubleSwitchingOff:     req.TroubleSwitchingOff,

		FeelingDown:    req.FeelingDown,
		LosingInterest: req.LosingInterest,
		FeelingAnxious: req.FeelingAnxious,
		MoodSwings:     req.MoodSwings,
		FeelingGuilty:  req.FeelingGuilty,

		SleepProblems:    req.SleepProblems,
		AppetiteChanges:  req.AppetiteChanges,
		FeelingTired:     req.FeelingTired,
		PhysicalSymptoms: req.PhysicalSymptoms,
		SubstanceUse:     req.SubstanceUse,
		Withdrawing:      req.Withdrawing,

		ThoughtsOfHarm:       req.ThoughtsOfHarm,
		LifeNotWorthLiving:   req.LifeNotWorthLiving,
		WorriedAboutStudents: req.WorriedAboutStudents,

		CopingMechanisms: req.CopingMechanisms,
		Goals:            req.Goals,

		TotalScore:       totalScore,
		RiskLevel:        analysis.RiskLevel,
		AIAnalysis:       analysisJSON,
		PersonalizedPlan: planJSON,
	}

	existing, err := s.repo.Assessment.GetByUserID(userID)
	switch {
	case err == nil:
		assessment.ID = existing.ID
		assessment.CreatedAt = existing.CreatedAt
		if err := s.repo.Assessment.Update(assessment); err != nil {
			return nil, fmt.Errorf("failed to update assessment: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		assessment.ID = uuid.New().String()
		if err := s.repo.Assessment.Create(assessment); err != nil {
			return nil, fmt.Errorf("failed to create assessment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	if !user.HasCompletedPreAssessment {
		user.HasCompletedPreAssessment = true
		if err := s.repo.Auth.UpdateUser(user); err != nil {
			return nil, fmt.Errorf("failed to mark assessment completed: %w", err)
		}
	}

	return &SubmitResponse{TotalScore: totalScore, Analysis: analysis}, nil
}

// StatusResponse 查询结果
type StatusResponse struct {
	HasCompletedPreAssessment bool                 `json:"hasCompletedPreAssessment"`
	Assessment                *model.PreAssessment `json:"assessmentData"`
}

// Get 查询用户的预评估状态与数据
func (s *Service) Get(ctx context.Context, userID string) (*StatusResponse, error) {
	user, err := s.repo.Auth.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	assessment, err := s.repo.Assessment.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			assessment = nil
		} else {
			return nil, fmt.Errorf("failed to load assessment: %w", err)
		}
	}

	return &StatusResponse{
		HasCompletedPreAssessment: user.HasCompletedPreAssessment,
		Assessment:                assessment,
	}, nil
}

// toJSONMap 将结构体转为 jsonb 可存储的 map
func toJSONMap(v interface{}) (model.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m model.JSON
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
