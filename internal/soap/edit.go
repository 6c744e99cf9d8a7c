package soap

import (
	"fmt"
	"time"
)

// ApplySummaryEdit 为指定摘要条目追加一个新版本
//
// 正文改写永远走版本追加，历史不截断。返回新的顶层切片，
// 未命中的条目原样共享，宿主侧可用引用相等做变更检测；
// 传入的切片及条目不被修改。pointID 未命中时原条目全部原样返回。
func ApplySummaryEdit(points []SummaryPoint, pointID string, newContent string) []SummaryPoint {
	next := make([]SummaryPoint, len(points))
	for i, point := range points {
		if point.ID != pointID {
			next[i] = point
			continue
		}

		version := PointVersion{
			ID:         fmt.Sprintf("%s-v%d", pointID, len(point.Versions)+1),
			Content:    newContent,
			CreatedAt:  time.Now(),
			IsOriginal: false,
		}

		edited := point
		edited.Text = newContent
		edited.Versions = append(append([]PointVersion{}, point.Versions...), version)
		edited.CurrentVersionID = version.ID
		next[i] = edited
	}
	return next
}

// CurrentVersion 返回条目当前生效的版本，历史为空返回 nil
func CurrentVersion(point *SummaryPoint) *PointVersion {
	for i := range point.Versions {
		if point.Versions[i].ID == point.CurrentVersionID {
			return &point.Versions[i]
		}
	}
	return nil
}
