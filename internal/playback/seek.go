package playback

import (
	"sort"

	"github.com/fachebot/consult-trace/internal/transcript"
)

// SeekRange 反馈给外部播放器的目标播放区间
type SeekRange struct {
	Start float64
	End   float64
}

// SeekRangeForSegment 点击语句时的目标区间，即该语句自身的时间范围
func SeekRangeForSegment(segment *transcript.Segment) SeekRange {
	return SeekRange{Start: segment.StartTime, End: segment.EndTime}
}

// SeekRangeForRelated 点击摘要条目时的目标区间
//
// 取条目关联的全部语句，按开始时间排序后覆盖最早开始到最晚
// 关联语句的结束。关联ID可能悬空（编号回退构造的ID），
// 悬空ID直接忽略；一条可用语句都没有时返回 false，不产生跳转。
func SeekRangeForRelated(segments []transcript.Segment, relatedIDs []string) (SeekRange, bool) {
	related := make([]*transcript.Segment, 0, len(relatedIDs))
	for _, id := range relatedIDs {
		if segment := transcript.FindByID(segments, id); segment != nil {
			related = append(related, segment)
		}
	}
	if len(related) == 0 {
		return SeekRange{}, false
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].StartTime < related[j].StartTime
	})

	return SeekRange{
		Start: related[0].StartTime,
		End:   related[len(related)-1].EndTime,
	}, true
}
