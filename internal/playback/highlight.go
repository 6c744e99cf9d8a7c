package playback

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fachebot/consult-trace/internal/transcript"
)

const (
	highlightOpen  = `<span class="active-word">`
	highlightClose = `</span>`
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// HighlightOccurrence 在语句文本中精确高亮当前正在朗读的那一次词出现
//
// 同一个词（如 "the"）可能在一条语句里出现多次，按字符串搜索
// 第一个命中会高亮错位置。正确的序号来自时间轴：在该语句的本地
// 词序列里，取与当前词 (start,end) 完全相同的那个实例，数它是
// 同形词里的第几个，再高亮文本中第 N 次字面出现。
// 任何一步失配都原样返回文本，绝不输出错误的高亮。
func HighlightOccurrence(segmentText string, segment *transcript.Segment, activeWord *WordTiming, allTimings []WordTiming) string {
	if activeWord == nil || segment == nil {
		return segmentText
	}

	// 当前词不属于这条语句时不得在语句内高亮
	if !overlapsSegment(activeWord, segment) {
		return segmentText
	}

	// 本地词序列：时间范围与语句重叠的全部词，按开始时间排序
	segmentWords := make([]WordTiming, 0, len(allTimings))
	for _, word := range allTimings {
		if overlapsSegment(&word, segment) {
			segmentWords = append(segmentWords, word)
		}
	}
	sort.SliceStable(segmentWords, func(i, j int) bool {
		return segmentWords[i].Start < segmentWords[j].Start
	})

	cleanWord := normalizeWord(activeWord.Word)
	if cleanWord == "" {
		return segmentText
	}

	// 序号按 (start,end) 相等在同形词实例中定位，而非按文本搜索顺序
	occurrence := 0
	found := false
	for _, word := range segmentWords {
		if normalizeWord(word.Word) != cleanWord {
			continue
		}
		occurrence++
		if word.Start == activeWord.Start && word.End == activeWord.End {
			found = true
			break
		}
	}
	if !found {
		return segmentText
	}

	// 从严到宽尝试三种匹配：原词带边界、归一化带边界、归一化无边界
	patterns := []string{
		`\b` + regexp.QuoteMeta(activeWord.Word) + `\b`,
		`\b` + regexp.QuoteMeta(cleanWord) + `\b`,
		regexp.QuoteMeta(cleanWord),
	}

	for _, pattern := range patterns {
		wordRegex, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			continue
		}

		matches := wordRegex.FindAllStringIndex(segmentText, -1)
		if len(matches) < occurrence {
			continue
		}

		target := matches[occurrence-1]
		return segmentText[:target[0]] +
			highlightOpen + segmentText[target[0]:target[1]] + highlightClose +
			segmentText[target[1]:]
	}

	return segmentText
}

// overlapsSegment 判断词的时间范围是否与语句范围重叠：
// 起点落入、终点落入或完全覆盖都算
func overlapsSegment(word *WordTiming, segment *transcript.Segment) bool {
	return (word.Start >= segment.StartTime && word.Start <= segment.EndTime) ||
		(word.End >= segment.StartTime && word.End <= segment.EndTime) ||
		(word.Start <= segment.StartTime && word.End >= segment.EndTime)
}

// normalizeWord 去掉非单词非空白字符并转小写
func normalizeWord(word string) string {
	return strings.ToLower(nonWordPattern.ReplaceAllString(word, ""))
}
