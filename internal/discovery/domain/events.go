package domain

import "time"

// SearchPerformedEvent 搜索完成事件
type SearchPerformedEvent struct {
	SessionID   string    `json:"session_id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"result_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// GuideCompletedEvent 引导向导完成事件
type GuideCompletedEvent struct {
	SessionID string    `json:"session_id"`
	Gender    string    `json:"gender"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}
