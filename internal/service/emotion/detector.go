package emotion

import (
	"math"
	"strings"
)

// Detection 情绪检测结果
type Detection struct {
	Emotion    string `json:"emotion"`
	Confidence int    `json:"confidence"`
}

// Detect 基于关键词加权匹配检测消息情绪
// 每命中一个关键词累加该情绪的权重，取最高分情绪；
// 无任何命中时返回 neutral，confidence 为 0
func Detect(message string) Detection {
	lower := strings.ToLower(message)

	maxScore := 0.0
	detected := "neutral"
	totalWeight := 0.0

	for _, entry := range lexicon {
		score := 0.0
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				score += entry.Weight
			}
		}

		if score > maxScore {
			maxScore = score
			detected = entry.Label
		}
		totalWeight += entry.Weight
	}

	confidence := 0
	if totalWeight > 0 {
		confidence = int(math.Round(maxScore / totalWeight * 100))
		if confidence > 100 {
			confidence = 100
		}
	}

	return Detection{Emotion: detected, Confidence: confidence}
}

// Intensity 将置信度换算为 1-10 的情绪强度
func Intensity(confidence int) int {
	intensity := int(math.Round(float64(confidence) / 10))
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 10 {
		intensity = 10
	}
	return intensity
}

// Strategies 返回指定情绪的应对建议，未知情绪回退到 neutral
func Strategies(emotion string) []string {
	if s, ok := copingStrategies[emotion]; ok {
		return s
	}
	return copingStrategies["neutral"]
}

// Labels 返回词表中全部情绪标签，按匹配优先级排列
func Labels() []string {
	labels := make([]string, 0, len(lexicon))
	for _, entry := range lexicon {
		labels = append(labels, entry.Label)
	}
	return labels
}
