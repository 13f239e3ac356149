package model

import "time"

// 风险等级
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// PreAssessment 预评估问卷
// 每位用户至多一条，重复提交按 userID 覆盖
type PreAssessment struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"uniqueIndex;size:36;not null" json:"user_id"`

	// 工作与日常状态（0-3）
	WorkOverwhelmed         int `gorm:"not null" json:"work_overwhelmed"`
	ConcentrationDifficulty int `gorm:"not null" json:"concentration_difficulty"`
	Procrastination         int `gorm:"not null" json:"procrastination"`
	Irritability            int `gorm:"not null" json:"irritability"`
	LackAccomplishment      int `gorm:"not null" json:"lack_accomplishment"`
	TroubleSwitchingOff     int `gorm:"not null" json:"trouble_switching_off"`

	// 情绪状态（0-3）
	FeelingDown    int `gorm:"not null" json:"feeling_down"`
	LosingInterest int `gorm:"not null" json:"losing_interest"`
	FeelingAnxious int `gorm:"not null" json:"feeling_anxious"`
	MoodSwings     int `gorm:"not null" json:"mood_swings"`
	FeelingGuilty  int `gorm:"not null" json:"feeling_guilty"`

	// 身体与行为变化（0-3）
	SleepProblems    int `gorm:"not null" json:"sleep_problems"`
	AppetiteChanges  int `gorm:"not null" json:"appetite_changes"`
	FeelingTired     int `gorm:"not null" json:"feeling_tired"`
	PhysicalSymptoms int `gorm:"not null" json:"physical_symptoms"`
	SubstanceUse     int `gorm:"not null" json:"substance_use"`
	Withdrawing      int `gorm:"not null" json:"withdrawing"`

	// 想法与安全（0-3）
	ThoughtsOfHarm       int `gorm:"not null" json:"thoughts_of_harm"`
	LifeNotWorthLiving   int `gorm:"not null" json:"life_not_worth_living"`
	WorriedAboutStudents int `gorm:"not null" json:"worried_about_students"`

	CopingMechanisms StringList `gorm:"type:jsonb" json:"coping_mechanisms"`
	Goals            StringList `gorm:"type:jsonb" json:"goals"`

	TotalScore       int    `gorm:"not null" json:"total_score"`
	RiskLevel        string `gorm:"size:20;not null" json:"risk_level"`
	AIAnalysis       JSON   `gorm:"type:jsonb" json:"ai_analysis,omitempty"`
	PersonalizedPlan JSON   `gorm:"type:jsonb" json:"personalized_plan,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (PreAssessment) TableName() string {
	return "pre_assessments"
}
