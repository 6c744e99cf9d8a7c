package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportDocument(t *testing.T) {
	points := []SummaryPoint{
		{ID: "S-0", Category: "S", Text: "fever", RelatedSegmentIDs: []string{"segment-2", "segment-3"}},
		{ID: "S-1", Category: "S", Text: "nausea", RelatedSegmentIDs: []string{"segment-4"}},
		{ID: "P-0", Category: "P", Text: "rest", RelatedSegmentIDs: nil},
	}

	doc := ExportDocument(points)

	// 键为小写类别，segment-<n> 回写为 U<n>，与编号回退方向一致
	assert.Len(t, doc, 2)
	if assert.Len(t, doc["s"], 2) {
		assert.Equal(t, "fever", doc["s"][0].Info)
		assert.Equal(t, []string{"U2", "U3"}, doc["s"][0].UtteranceIDs)
		assert.Equal(t, []string{"U4"}, doc["s"][1].UtteranceIDs)
	}
	if assert.Len(t, doc["p"], 1) {
		assert.Empty(t, doc["p"][0].UtteranceIDs)
	}
}

func TestExportDocument_KeepsForeignIDs(t *testing.T) {
	points := []SummaryPoint{
		{ID: "A-0", Category: "A", Text: "x", RelatedSegmentIDs: []string{"turn-7"}},
	}

	doc := ExportDocument(points)

	// 非 segment-<n> 形式的ID原样保留
	assert.Equal(t, []string{"turn-7"}, doc["a"][0].UtteranceIDs)
}

func TestExportDocument_RoundTripsThroughNormalization(t *testing.T) {
	rawDoc := map[string]any{
		"s": []any{
			map[string]any{"info": "fever", "utterance_ids": []any{"U2"}},
		},
	}
	points := NormalizeSummary(rawDoc, scenarioSegments())

	doc := ExportDocument(points)

	if assert.Len(t, doc["s"], 1) {
		assert.Equal(t, "fever", doc["s"][0].Info)
		assert.Equal(t, []string{"U2"}, doc["s"][0].UtteranceIDs)
	}
}
