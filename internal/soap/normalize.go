package soap

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fachebot/consult-trace/internal/logger"
	"github.com/fachebot/consult-trace/internal/transcript"
)

// canonicalCategories SOAP 类别的规范顺序，归一化输出按此排序
var canonicalCategories = []string{"S", "O", "A", "P"}

// categoryAliases 原始文档中可接受的类别键，大小写不敏感
var categoryAliases = map[string]string{
	"s":          "S",
	"o":          "O",
	"a":          "A",
	"p":          "P",
	"subjective": "S",
	"objective":  "O",
	"assessment": "A",
	"plan":       "P",
}

// CanonicalCategory 把原始类别键归一化为大写单字母，无法识别返回空串
func CanonicalCategory(key string) string {
	return categoryAliases[strings.ToLower(key)]
}

// NormalizeSummary 把异构摘要文档归一化为有序摘要条目列表
//
// 仅保留可识别的 SOAP 类别键，其余键（含 utterances 附表）忽略；
// 类别值不是列表时告警跳过，不中断其余类别。Go 的 map 遍历无序，
// 这里按规范类别顺序 S/O/A/P 输出，同一类别存在多个原始键时按
// 键名排序拼接，保证同输入同输出。
func NormalizeSummary(rawDoc map[string]any, segments []transcript.Segment) []SummaryPoint {
	utterances := utteranceTable(rawDoc)

	// 按规范类别聚合原始键
	byCategory := make(map[string][]string)
	for key := range rawDoc {
		category := CanonicalCategory(key)
		if category == "" {
			continue
		}
		byCategory[category] = append(byCategory[category], key)
	}

	points := make([]SummaryPoint, 0)
	for _, category := range canonicalCategories {
		keys := byCategory[category]
		sort.Strings(keys)

		index := 0
		for _, key := range keys {
			items, ok := rawDoc[key].([]any)
			if !ok {
				logger.Warnf("[Summary] 类别 %q 的值不是列表，跳过", key)
				continue
			}

			for _, rawItem := range items {
				item, ok := decodeItem(rawItem)
				if !ok {
					logger.Warnf("[Summary] 类别 %q 存在非对象条目，丢弃", key)
					continue
				}

				points = append(points, buildPoint(category, index, item, segments, utterances))
				index++
			}
		}
	}

	return points
}

// buildPoint 从单条原始条目构造摘要条目，引用逐个解析，
// 去重保留首见顺序，解析失败的引用静默丢弃
func buildPoint(category string, index int, item *RawSummaryItem, segments []transcript.Segment, utterances map[string]string) SummaryPoint {
	pointID := fmt.Sprintf("%s-%d", category, index)
	text := item.Text()

	seen := make(map[string]bool)
	relatedIDs := make([]string, 0)
	for _, ref := range item.References() {
		segmentID := ResolveReference(ref, segments, utterances)
		if segmentID == "" || seen[segmentID] {
			continue
		}
		seen[segmentID] = true
		relatedIDs = append(relatedIDs, segmentID)
	}

	originalVersion := PointVersion{
		ID:         pointID + "-v1",
		Content:    text,
		CreatedAt:  time.Now(),
		IsOriginal: true,
	}

	return SummaryPoint{
		ID:                pointID,
		Category:          category,
		Text:              text,
		RelatedSegmentIDs: relatedIDs,
		Versions:          []PointVersion{originalVersion},
		CurrentVersionID:  originalVersion.ID,
	}
}

// decodeItem 把 JSON 条目转成 RawSummaryItem，非对象返回 false
func decodeItem(rawItem any) (*RawSummaryItem, bool) {
	fields, ok := rawItem.(map[string]any)
	if !ok {
		return nil, false
	}

	item := &RawSummaryItem{}
	if s, ok := fields["sentence_text"].(string); ok {
		item.SentenceText = s
	}
	if s, ok := fields["info"].(string); ok {
		item.Info = s
	}
	if s, ok := fields["utterance_id"].(string); ok {
		item.UtteranceID = s
	}
	if list, ok := fields["utterance_ids"].([]any); ok {
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				item.UtteranceIDs = append(item.UtteranceIDs, s)
			}
		}
	}
	return item, true
}

// utteranceTable 取文档中可选的 utterances 附表，
// 仅供引用解析的正文匹配回退使用
func utteranceTable(rawDoc map[string]any) map[string]string {
	raw, ok := rawDoc["utterances"].(map[string]any)
	if !ok {
		return nil
	}

	table := make(map[string]string, len(raw))
	for id, entry := range raw {
		if s, ok := entry.(string); ok {
			table[id] = s
		}
	}
	return table
}
