package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartGuide(t *testing.T) {
	state := StartGuide("hiking backpack", Intent{Vegan: true})

	assert.Equal(t, StageAwaitingGender, state.Stage)
	assert.Equal(t, "hiking backpack", state.Query)
	assert.Equal(t, Intent{Vegan: true}, state.Intent)
	assert.True(t, state.Active())
}

func TestGuideFullWalk(t *testing.T) {
	state := StartGuide("hiking backpack", Intent{})

	tr, err := state.Answer("Female")
	require.NoError(t, err)
	assert.Equal(t, "Got it—Female. What is the usual duration you hike for?", tr.Prompt)
	assert.Equal(t, "Women", tr.State.Gender)
	assert.Equal(t, "Female", tr.State.GenderLabel)
	assert.Equal(t, StageAwaitingDuration, tr.State.Stage)
	assert.False(t, tr.Final)

	tr, err = tr.State.Answer("One week")
	require.NoError(t, err)
	assert.Equal(t, "Awesome—One week sounds fun! Do you generally hike in warm climate, cold climate, rainy, or mix of all?", tr.Prompt)
	assert.Equal(t, StageAwaitingClimate, tr.State.Stage)

	tr, err = tr.State.Answer("Cold climate")
	require.NoError(t, err)
	assert.Equal(t, "Love it! Sure. One last question. How do you prefer your backpack support?", tr.Prompt)
	assert.Equal(t, StageAwaitingSupport, tr.State.Stage)

	tr, err = tr.State.Answer("Titanium mesh")
	require.NoError(t, err)
	assert.True(t, tr.Final)
	assert.Equal(t, StageComplete, tr.State.Stage)
	assert.False(t, tr.State.Active())
	assert.Equal(t,
		"Thanks for your patience — you've answered all the questions. Here's what I noted: "+
			"Goal: hiking backpack; Skin type: Female; Finish: One week; Concern: Cold climate; Preferences: Titanium mesh.",
		tr.Prompt)
}

func TestGuideSkipGender(t *testing.T) {
	state := StartGuide("", Intent{})

	tr, err := state.Answer("Skip")
	require.NoError(t, err)
	assert.Equal(t, "No problem. What is the usual duration you hike for?", tr.Prompt)
	assert.Equal(t, "", tr.State.Gender)
	assert.Equal(t, "No preference", tr.State.GenderLabel)
}

func TestGuideShowMoreExpandsSupportOptions(t *testing.T) {
	state := GuideState{Stage: StageAwaitingSupport}
	require.Len(t, state.Options(), 5)
	assert.Equal(t, "Show more", state.Options()[4].Label)

	tr, err := state.Answer("Show more")
	require.NoError(t, err)
	// 展开更多选项但不迁移阶段
	assert.Equal(t, StageAwaitingSupport, tr.State.Stage)
	assert.True(t, tr.State.ShowMore)
	assert.Len(t, tr.State.Options(), 8)

	tr, err = tr.State.Answer("Aircraft grade mesh frame")
	require.NoError(t, err)
	assert.True(t, tr.Final)
	assert.Equal(t, "Aircraft grade mesh frame", tr.State.SupportLabel)
}

func TestGuideExpandedOptionRejectedBeforeShowMore(t *testing.T) {
	state := GuideState{Stage: StageAwaitingSupport}

	_, err := state.Answer("Aircraft grade mesh frame")
	assert.ErrorIs(t, err, ErrInvalidGuideAnswer)
}

func TestGuideInvalidAnswer(t *testing.T) {
	state := StartGuide("", Intent{})

	_, err := state.Answer("Purple")
	assert.ErrorIs(t, err, ErrInvalidGuideAnswer)

	// 答案匹配忽略大小写
	tr, err := state.Answer("mALE")
	require.NoError(t, err)
	assert.Equal(t, "Men", tr.State.Gender)
}

func TestGuideAnswerWhenNotActive(t *testing.T) {
	state := GuideState{Stage: StageComplete}
	_, err := state.Answer("Male")
	assert.Error(t, err)
}

func TestSelectionsSummaryDefaults(t *testing.T) {
	state := GuideState{Stage: StageComplete}

	summary := state.SelectionsSummary()

	assert.Equal(t,
		"Thanks for your patience — you've answered all the questions. Here's what I noted: "+
			"Skin type: Not specified; Finish: Not specified; Concern: Not specified; Preferences: Not specified.",
		summary)
}
