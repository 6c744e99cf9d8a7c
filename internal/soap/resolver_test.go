package soap

import (
	"testing"

	"github.com/fachebot/consult-trace/internal/transcript"
	"github.com/stretchr/testify/assert"
)

func testSegments() []transcript.Segment {
	return transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "What brings you in today?", UtteranceID: "U1"},
		{Speaker: "Patient", Text: "I have a fever and a sore stomach.", UtteranceID: "U2"},
		{Speaker: "Doctor", Text: "How high is the fever?", UtteranceID: "U3"},
	})
}

func TestResolveReference_ExactMatch(t *testing.T) {
	segments := testSegments()

	assert.Equal(t, "segment-2", ResolveReference("U2", segments, nil))
	assert.Equal(t, "segment-3", ResolveReference("U3", segments, nil))
}

func TestResolveReference_ExactMatchBeatsContentMatch(t *testing.T) {
	// 第 1 条语句的正文能命中附表内容，第 5 条语句持有精确ID，
	// 精确匹配必须整体先于正文匹配，不得被靠前的正文命中遮蔽
	segments := transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "the exam went fine"},
		{Speaker: "Patient", Text: "b"},
		{Speaker: "Doctor", Text: "c"},
		{Speaker: "Patient", Text: "d"},
		{Speaker: "Doctor", Text: "e", UtteranceID: "U5"},
	})
	utterances := map[string]string{"U5": "Doctor: the exam went fine"}

	assert.Equal(t, "segment-5", ResolveReference("U5", segments, utterances))
}

func TestResolveReference_ExactMatchAmbiguityFirstWins(t *testing.T) {
	segments := transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "a", UtteranceID: "U7"},
		{Speaker: "Patient", Text: "b", UtteranceID: "U7"},
	})

	// utterance_id 不保证唯一，重复时转写顺序靠前者优先
	assert.Equal(t, "segment-1", ResolveReference("U7", segments, nil))
}

func TestResolveReference_ContentMatch(t *testing.T) {
	segments := transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "Good morning."},
		{Speaker: "Patient", Text: "I have a fever and a sore stomach today."},
	})
	utterances := map[string]string{"U9": "Patient: I have a fever and a sore stomach"}

	// 没有精确ID命中时，取附表冒号后的正文片段做包含匹配
	assert.Equal(t, "segment-2", ResolveReference("U9", segments, utterances))
}

func TestResolveReference_ContentMatchTailStopsAtSecondColon(t *testing.T) {
	// 附表正文自身可能带冒号（时间、血压值等），匹配片段只取
	// 第一个冒号到第二个冒号之间的部分，不能因此落空到编号回退
	segments := transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "time is 10"},
	})
	utterances := map[string]string{"U4": "Doctor: time is 10:30"}

	assert.Equal(t, "segment-1", ResolveReference("U4", segments, utterances))
}

func TestResolveReference_ContentMatchSkipsEntriesWithoutTail(t *testing.T) {
	segments := transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "anything"},
	})

	tests := []struct {
		name       string
		utterances map[string]string
		want       string
	}{
		{name: "附表缺失走编号回退", utterances: nil, want: "segment-4"},
		{name: "附表无该条目走编号回退", utterances: map[string]string{"U1": "Doctor: hi"}, want: "segment-4"},
		{name: "条目没有冒号走编号回退", utterances: map[string]string{"U4": "no colon here"}, want: "segment-4"},
		{name: "冒号后为空走编号回退", utterances: map[string]string{"U4": "Doctor:   "}, want: "segment-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveReference("U4", segments, tt.utterances))
		})
	}
}

func TestResolveReference_NumericFallbackUnchecked(t *testing.T) {
	segments := testSegments()

	// 编号回退不校验语句是否存在，调用方必须容忍悬空ID
	assert.Equal(t, "segment-999", ResolveReference("U999", segments, nil))
}

func TestResolveReference_NumericFallbackRejects(t *testing.T) {
	segments := testSegments()

	tests := []struct {
		name string
		ref  string
	}{
		{name: "U0 越过 1 起始编号", ref: "U0"},
		{name: "编号后带字母", ref: "U12abc"},
		{name: "纯 U 无编号", ref: "U"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ResolveReference(tt.ref, segments, nil))
		})
	}
}

func TestResolveReference_NonUPrefixed(t *testing.T) {
	segments := transcript.BuildSegments([]transcript.RawRecord{
		{Speaker: "Doctor", Text: "a", UtteranceID: "turn-1"},
		{Speaker: "Patient", Text: "b", UtteranceID: "turn-2"},
	})

	// 非 U 前缀引用只做精确匹配，没有编号回退
	assert.Equal(t, "segment-2", ResolveReference("turn-2", segments, nil))
	assert.Empty(t, ResolveReference("turn-9", segments, nil))
}

func TestResolveReference_MalformedInput(t *testing.T) {
	assert.Empty(t, ResolveReference("", testSegments(), nil))

	// 空语句列表下 U 前缀引用仍走编号回退
	assert.Equal(t, "segment-2", ResolveReference("U2", nil, nil))
	assert.Equal(t, "segment-2", ResolveReference("U2", []transcript.Segment{}, nil))
}
