package domain

import (
	"fmt"
	"strings"
)

// GuideStage 引导式推荐向导的状态
type GuideStage string

const (
	StageAwaitingGender   GuideStage = "awaiting_gender"
	StageAwaitingDuration GuideStage = "awaiting_duration"
	StageAwaitingClimate  GuideStage = "awaiting_climate"
	StageAwaitingSupport  GuideStage = "awaiting_support"
	StageComplete         GuideStage = "complete"
)

// ErrInvalidGuideAnswer 答案不在当前阶段的选项内
var ErrInvalidGuideAnswer = fmt.Errorf("answer not among current stage options")

// GuideOption 向导的一个可选答案
type GuideOption struct {
	Label string `json:"label"`
	// Value 仅性别阶段使用，是写入会话的过滤值；Skip 为空
	Value string `json:"value,omitempty"`
}

var genderOptions = []GuideOption{
	{Label: "Male", Value: "Men"},
	{Label: "Female", Value: "Women"},
	{Label: "Unisex", Value: "Unisex"},
	{Label: "Skip", Value: ""},
}

var durationOptions = []GuideOption{
	{Label: "Single day"},
	{Label: "2 days"},
	{Label: "One week"},
	{Label: "2 week"},
	{Label: "Not sure"},
}

var climateOptions = []GuideOption{
	{Label: "Warm climate"},
	{Label: "Cold climate"},
	{Label: "Rainy"},
	{Label: "Mix of all"},
}

var supportOptions = []GuideOption{
	{Label: "Full aluminium frame"},
	{Label: "Semi plastic framed"},
	{Label: "Titanium mesh"},
	{Label: "Air pockets"},
}

var supportMoreOptions = []GuideOption{
	{Label: "Acrylic full frame"},
	{Label: "Aircraft grade mesh frame"},
	{Label: "Back support lite frame"},
	{Label: "Composite membrane frame"},
}

// GuideState 向导进度与已收集的答案，随会话持久化
type GuideState struct {
	Stage         GuideStage `json:"stage"`
	Query         string     `json:"query"`
	Intent        Intent     `json:"intent"`
	GenderLabel   string     `json:"gender_label"`
	Gender        string     `json:"gender"`
	DurationLabel string     `json:"duration_label"`
	ClimateLabel  string     `json:"climate_label"`
	SupportLabel  string     `json:"support_label"`
	ShowMore      bool       `json:"show_more"`
}

// StartGuide 以触发搜索时的查询与意图开启向导
func StartGuide(query string, intent Intent) GuideState {
	return GuideState{Stage: StageAwaitingGender, Query: query, Intent: intent}
}

// Active 向导是否正在进行
func (g GuideState) Active() bool {
	return g.Stage != "" && g.Stage != StageComplete
}

// Options 当前阶段的可选答案
func (g GuideState) Options() []GuideOption {
	switch g.Stage {
	case StageAwaitingGender:
		return genderOptions
	case StageAwaitingDuration:
		return durationOptions
	case StageAwaitingClimate:
		return climateOptions
	case StageAwaitingSupport:
		if g.ShowMore {
			return append(append([]GuideOption{}, supportOptions...), supportMoreOptions...)
		}
		return append(append([]GuideOption{}, supportOptions...), GuideOption{Label: "Show more"})
	}
	return nil
}

// GuideTransition 一次状态迁移的结果
type GuideTransition struct {
	State  GuideState
	Prompt string
	// Final 为真表示向导结束，应当执行最终推荐
	Final bool
}

// Answer 处理当前阶段的一个答案并迁移到下一阶段。
// 每个阶段只接受自己选项表中的标签；"Show more" 展开更多支撑选项而不迁移。
func (g GuideState) Answer(label string) (GuideTransition, error) {
	label = strings.TrimSpace(label)

	switch g.Stage {
	case StageAwaitingGender:
		opt, ok := findOption(genderOptions, label)
		if !ok {
			return GuideTransition{}, ErrInvalidGuideAnswer
		}
		next := g
		next.Gender = opt.Value
		if strings.EqualFold(label, "skip") {
			next.GenderLabel = "No preference"
		} else {
			next.GenderLabel = label
		}
		next.Stage = StageAwaitingDuration
		ack := fmt.Sprintf("Got it—%s.", label)
		if strings.EqualFold(label, "skip") {
			ack = "No problem."
		}
		return GuideTransition{
			State:  next,
			Prompt: fmt.Sprintf("%s What is the usual duration you hike for?", ack),
		}, nil

	case StageAwaitingDuration:
		if _, ok := findOption(durationOptions, label); !ok {
			return GuideTransition{}, ErrInvalidGuideAnswer
		}
		next := g
		next.DurationLabel = label
		next.Stage = StageAwaitingClimate
		return GuideTransition{
			State:  next,
			Prompt: fmt.Sprintf("Awesome—%s sounds fun! Do you generally hike in warm climate, cold climate, rainy, or mix of all?", label),
		}, nil

	case StageAwaitingClimate:
		if _, ok := findOption(climateOptions, label); !ok {
			return GuideTransition{}, ErrInvalidGuideAnswer
		}
		next := g
		next.ClimateLabel = label
		next.Stage = StageAwaitingSupport
		return GuideTransition{
			State:  next,
			Prompt: "Love it! Sure. One last question. How do you prefer your backpack support?",
		}, nil

	case StageAwaitingSupport:
		if strings.EqualFold(label, "show more") && !g.ShowMore {
			next := g
			next.ShowMore = true
			return GuideTransition{
				State:  next,
				Prompt: "Love it! Sure. One last question. How do you prefer your backpack support?",
			}, nil
		}
		options := supportOptions
		if g.ShowMore {
			options = append(append([]GuideOption{}, supportOptions...), supportMoreOptions...)
		}
		if _, ok := findOption(options, label); !ok {
			return GuideTransition{}, ErrInvalidGuideAnswer
		}
		next := g
		next.SupportLabel = label
		next.Stage = StageComplete
		return GuideTransition{
			State:  next,
			Prompt: next.SelectionsSummary(),
			Final:  true,
		}, nil
	}

	return GuideTransition{}, fmt.Errorf("guide not active")
}

// SelectionsSummary 收尾总结，逐项回放用户的选择
func (g GuideState) SelectionsSummary() string {
	parts := make([]string, 0, 5)
	if g.Query != "" {
		parts = append(parts, fmt.Sprintf("Goal: %s", g.Query))
	}
	parts = append(parts, fmt.Sprintf("Skin type: %s", orDefault(g.GenderLabel, "Not specified")))
	parts = append(parts, fmt.Sprintf("Finish: %s", orDefault(g.DurationLabel, "Not specified")))
	parts = append(parts, fmt.Sprintf("Concern: %s", orDefault(g.ClimateLabel, "Not specified")))
	parts = append(parts, fmt.Sprintf("Preferences: %s", orDefault(g.SupportLabel, "Not specified")))
	return fmt.Sprintf("Thanks for your patience — you've answered all the questions. Here's what I noted: %s.", strings.Join(parts, "; "))
}

func findOption(options []GuideOption, label string) (GuideOption, bool) {
	for _, opt := range options {
		if strings.EqualFold(opt.Label, label) {
			return opt, true
		}
	}
	return GuideOption{}, false
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
