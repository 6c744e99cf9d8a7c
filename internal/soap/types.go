package soap

import "time"

// PointVersion 摘要条目的一个历史版本
type PointVersion struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	IsOriginal bool      `json:"isOriginal"`
}

// SummaryPoint 一条临床摘要陈述
//
// Versions 只增不减，Versions[0] 永远是原始版本，
// CurrentVersionID 永远指向最后追加的版本。
type SummaryPoint struct {
	ID                string         `json:"id"`
	Category          string         `json:"category"`
	Text              string         `json:"text"`
	RelatedSegmentIDs []string       `json:"relatedSegmentIds"`
	Versions          []PointVersion `json:"versions"`
	CurrentVersionID  string         `json:"currentVersionId"`
}

// RawSummaryItem 摘要文件中的一条原始条目
//
// 上游管线并不统一：正文可能在 sentence_text 或 info，
// 引用可能是 utterance_ids 列表或单个 utterance_id。
type RawSummaryItem struct {
	Info         string   `json:"info,omitempty"`
	SentenceText string   `json:"sentence_text,omitempty"`
	UtteranceID  string   `json:"utterance_id,omitempty"`
	UtteranceIDs []string `json:"utterance_ids,omitempty"`
}

// Text 返回条目正文，sentence_text 优先于 info，取第一个非空值
func (item *RawSummaryItem) Text() string {
	if item.SentenceText != "" {
		return item.SentenceText
	}
	return item.Info
}

// References 返回条目的引用列表，列表字段优先于单值字段，
// 仅有单值时包装为单元素列表
func (item *RawSummaryItem) References() []string {
	if len(item.UtteranceIDs) > 0 {
		return item.UtteranceIDs
	}
	if item.UtteranceID != "" {
		return []string{item.UtteranceID}
	}
	return nil
}
