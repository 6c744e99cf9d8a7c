package document

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/fachebot/consult-trace/internal/playback"
	"github.com/fachebot/consult-trace/internal/transcript"
)

// 加载层只对文档顶层形状报错：拿错文件（摘要不是对象、转写不是
// 数组）必须让调用方知道。字段级别的问题不报错：缺失或非数值的
// 时间降级为 NaN，由定位器视为永不活跃。

// LoadTranscript 读取逐句转写文件，顶层必须是 JSON 数组
func LoadTranscript(path string) ([]transcript.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rawRecords []map[string]any
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		return nil, fmt.Errorf("转写文件 %s 顶层不是记录数组: %w", path, err)
	}

	records := make([]transcript.RawRecord, len(rawRecords))
	for i, fields := range rawRecords {
		records[i] = transcript.RawRecord{
			Speaker:     stringField(fields, "speaker"),
			Text:        stringField(fields, "text"),
			Start:       numberField(fields, "start"),
			End:         numberField(fields, "end"),
			UtteranceID: stringField(fields, "utterance_id"),
		}
	}
	return records, nil
}

// LoadWordTimings 读取逐词时间戳文件，顶层必须是 JSON 数组
func LoadWordTimings(path string) ([]playback.WordTiming, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rawTimings []map[string]any
	if err := json.Unmarshal(data, &rawTimings); err != nil {
		return nil, fmt.Errorf("时间戳文件 %s 顶层不是记录数组: %w", path, err)
	}

	timings := make([]playback.WordTiming, len(rawTimings))
	for i, fields := range rawTimings {
		timings[i] = playback.WordTiming{
			Word:  stringField(fields, "word"),
			Start: numberField(fields, "start"),
			End:   numberField(fields, "end"),
		}
	}
	return timings, nil
}

// LoadSummary 读取原始摘要文档，顶层必须是 JSON 对象
func LoadSummary(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("摘要文件 %s 顶层不是对象: %w", path, err)
	}
	return doc, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// numberField 取数值字段，缺失或类型不对降级为 NaN
func numberField(fields map[string]any, key string) float64 {
	if n, ok := fields[key].(float64); ok {
		return n
	}
	return math.NaN()
}
