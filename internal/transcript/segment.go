package transcript

import "fmt"

// RawRecord 转写文件中的一条原始记录
type RawRecord struct {
	Speaker     string  `json:"speaker"`
	Text        string  `json:"text"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	UtteranceID string  `json:"utterance_id,omitempty"`
}

// Segment 一条定位后的转写语句
//
// ID 按加载顺序取 segment-1、segment-2 ...，转写重新加载后所有
// 下游引用必须重建。UtteranceRef 仅用于摘要引用解析，可能缺失或重复。
type Segment struct {
	ID           string
	SpeakerID    string
	Text         string
	StartTime    float64
	EndTime      float64
	UtteranceRef string
}

// BuildSegments 把原始转写记录映射为定位后的语句列表
//
// 不做去重、不校验时间单调性，缺失时间原样传递（非法时间
// 由定位器视为永不活跃）。
func BuildSegments(records []RawRecord) []Segment {
	segments := make([]Segment, len(records))
	for i, record := range records {
		segments[i] = Segment{
			ID:           SegmentID(i + 1),
			SpeakerID:    record.Speaker,
			Text:         record.Text,
			StartTime:    record.Start,
			EndTime:      record.End,
			UtteranceRef: record.UtteranceID,
		}
	}
	return segments
}

// SegmentID 按 1 起始的位置序号构造语句ID
func SegmentID(position int) string {
	return fmt.Sprintf("segment-%d", position)
}

// FindByID 按ID查找语句，摘要引用可能指向不存在的语句，此时返回 nil
func FindByID(segments []Segment, id string) *Segment {
	for i := range segments {
		if segments[i].ID == id {
			return &segments[i]
		}
	}
	return nil
}
