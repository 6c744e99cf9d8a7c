package svc

import (
	"fmt"

	"github.com/fachebot/consult-trace/internal/config"
	"github.com/fachebot/consult-trace/internal/document"
	"github.com/fachebot/consult-trace/internal/playback"
	"github.com/fachebot/consult-trace/internal/soap"
	"github.com/fachebot/consult-trace/internal/transcript"
)

type ServiceContext struct {
	Config *config.Config
}

func NewServiceContext(c *config.Config) *ServiceContext {
	return &ServiceContext{Config: c}
}

// Bundle 一个会话加载并对齐后的全部数据
type Bundle struct {
	Name       string
	Segments   []transcript.Segment
	Speakers   []transcript.Speaker
	WordTiming []playback.WordTiming
	Points     []soap.SummaryPoint
	Locator    *playback.Locator
}

// LoadConversation 加载并对齐指定会话的三份文档
//
// 任何一份文档加载失败都整体失败，不做部分加载，
// 调用方应把当前会话重置为空而不是半渲染。
func (svcCtx *ServiceContext) LoadConversation(name string) (*Bundle, error) {
	conv := svcCtx.Config.FindConversation(name)
	if conv == nil {
		return nil, fmt.Errorf("未找到会话: %s", name)
	}

	records, err := document.LoadTranscript(conv.TranscriptPath)
	if err != nil {
		return nil, fmt.Errorf("加载转写失败: %w", err)
	}

	rawSummary, err := document.LoadSummary(conv.SummaryPath)
	if err != nil {
		return nil, fmt.Errorf("加载摘要失败: %w", err)
	}

	timings, err := document.LoadWordTimings(conv.WordTimingPath)
	if err != nil {
		return nil, fmt.Errorf("加载时间戳失败: %w", err)
	}

	segments := transcript.BuildSegments(records)
	return &Bundle{
		Name:       conv.Name,
		Segments:   segments,
		Speakers:   transcript.BuildSpeakers(segments),
		WordTiming: timings,
		Points:     soap.NormalizeSummary(rawSummary, segments),
		Locator:    playback.NewLocator(segments, timings),
	}, nil
}
