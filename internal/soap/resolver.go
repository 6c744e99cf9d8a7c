package soap

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fachebot/consult-trace/internal/transcript"
)

var numericRefPattern = regexp.MustCompile(`^U(\d+)$`)

// ResolveReference 把摘要条目里的语句引用解析为语句ID，无法解析返回空串
//
// 上游管线产出的引用格式并不一致，按以下顺序逐级回退：
//  1. 精确匹配某条语句的 utterance_id，转写顺序靠前者优先；
//  2. U 前缀引用查 utterances 附表，取 ":" 之后的正文片段，
//     匹配第一条正文包含该片段的语句；
//  3. U 前缀引用按 U<n> -> segment-<n> 直接映射，不校验语句
//     是否存在，调用方必须容忍悬空ID。
//
// 非 U 前缀引用只走第 1 步。任何输入都不会触发 panic。
func ResolveReference(ref string, segments []transcript.Segment, utterances map[string]string) string {
	if ref == "" {
		return ""
	}

	// 精确匹配 utterance_id
	for i := range segments {
		if segments[i].UtteranceRef == ref {
			return segments[i].ID
		}
	}

	if !strings.HasPrefix(ref, "U") {
		return ""
	}

	// 按附表正文片段匹配
	if tail := lookupTail(utterances, ref); tail != "" {
		for i := range segments {
			if strings.Contains(segments[i].Text, tail) {
				return segments[i].ID
			}
		}
	}

	// 按编号直接映射，1 起始，不检查越界
	if match := numericRefPattern.FindStringSubmatch(ref); match != nil {
		n, err := strconv.Atoi(match[1])
		if err == nil && n > 0 {
			return transcript.SegmentID(n)
		}
	}

	return ""
}

// lookupTail 取附表里 "Speaker: text" 形式条目的正文片段，
// 即第一个冒号和第二个冒号之间的部分：正文自身可能还带冒号
// （时间、血压值等），多余的部分不参与包含匹配
func lookupTail(utterances map[string]string, ref string) string {
	if utterances == nil {
		return ""
	}
	entry := utterances[ref]
	if entry == "" {
		return ""
	}
	parts := strings.SplitN(entry, ":", 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
