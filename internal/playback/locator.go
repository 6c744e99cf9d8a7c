package playback

import "github.com/fachebot/consult-trace/internal/transcript"

// Locator 按播放时间定位当前语句和当前词
//
// 外部播放器每次上报播放位置都会调用 Locate，频率很高，
// 因此语句和词表在构造时持有，Locate 本身不分配。
type Locator struct {
	segments []transcript.Segment
	timings  []WordTiming
}

func NewLocator(segments []transcript.Segment, timings []WordTiming) *Locator {
	return &Locator{segments: segments, timings: timings}
}

// Locate 返回时间戳对应的当前语句和当前词，均可能为 nil
//
// 边界取闭区间，时间范围重叠时转写顺序靠前者优先。
// 语句和词相互独立：词可以在没有任何语句活跃时活跃，反之亦然。
// 非法时间（NaN）在比较中恒为假，对应记录永不活跃。
func (l *Locator) Locate(timestamp float64) (*transcript.Segment, *WordTiming) {
	var activeSegment *transcript.Segment
	for i := range l.segments {
		if timestamp >= l.segments[i].StartTime && timestamp <= l.segments[i].EndTime {
			activeSegment = &l.segments[i]
			break
		}
	}

	var activeWord *WordTiming
	for i := range l.timings {
		if timestamp >= l.timings[i].Start && timestamp <= l.timings[i].End {
			activeWord = &l.timings[i]
			break
		}
	}

	return activeSegment, activeWord
}
