package soap

import (
	"regexp"
	"strings"
)

var segmentIDPattern = regexp.MustCompile(`^segment-(\d+)$`)

// ExportDocument 把归一化后的摘要条目还原为原始文档形状
//
// 键为小写单字母类别，条目写入 info 与 utterance_ids。
// 语句ID按 segment-<n> -> U<n> 回写，与解析时的编号回退方向一致；
// 非 segment-<n> 形式的ID原样保留。
func ExportDocument(points []SummaryPoint) map[string][]RawSummaryItem {
	doc := make(map[string][]RawSummaryItem)
	for _, point := range points {
		key := strings.ToLower(point.Category)
		doc[key] = append(doc[key], RawSummaryItem{
			Info:         point.Text,
			UtteranceIDs: exportReferences(point.RelatedSegmentIDs),
		})
	}
	return doc
}

func exportReferences(segmentIDs []string) []string {
	refs := make([]string, len(segmentIDs))
	for i, id := range segmentIDs {
		if match := segmentIDPattern.FindStringSubmatch(id); match != nil {
			refs[i] = "U" + match[1]
		} else {
			refs[i] = id
		}
	}
	return refs
}
