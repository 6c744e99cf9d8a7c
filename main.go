package main

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/fachebot/consult-trace/internal/config"
	"github.com/fachebot/consult-trace/internal/logger"
	"github.com/fachebot/consult-trace/internal/playback"
	"github.com/fachebot/consult-trace/internal/svc"
	"github.com/fachebot/consult-trace/internal/transcript"
)

var (
	configFile   = flag.String("f", "etc/config.yaml", "the config file")
	conversation = flag.String("c", "", "conversation name, defaults to the configured default")
	probeTime    = flag.Float64("t", math.NaN(), "playback position to probe, in seconds")
)

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	svcCtx := svc.NewServiceContext(c)

	name := *conversation
	if name == "" {
		name = c.DefaultConversation().Name
	}

	// 加载并对齐会话数据
	bundle, err := svcCtx.LoadConversation(name)
	if err != nil {
		logger.Fatalf("[Viewer] 加载会话失败, %s", err)
	}
	logger.Infof("[Viewer] 会话 %q: %d 条语句, %d 个词, %d 条摘要",
		bundle.Name, len(bundle.Segments), len(bundle.WordTiming), len(bundle.Points))

	// 打印归一化后的摘要及其关联语句
	for _, point := range bundle.Points {
		fmt.Printf("[%s] %s\n", point.ID, point.Text)
		if len(point.RelatedSegmentIDs) > 0 {
			fmt.Printf("    关联: %s", strings.Join(point.RelatedSegmentIDs, ", "))
			if seekRange, ok := playback.SeekRangeForRelated(bundle.Segments, point.RelatedSegmentIDs); ok {
				fmt.Printf(" (%.2fs ~ %.2fs)", seekRange.Start, seekRange.End)
			}
			fmt.Println()
		}
	}

	// 探测指定播放位置
	if !math.IsNaN(*probeTime) {
		probe(bundle, *probeTime)
	}
}

func probe(bundle *svc.Bundle, timestamp float64) {
	segment, word := bundle.Locator.Locate(timestamp)
	if segment == nil && word == nil {
		logger.Infof("[Viewer] %.2fs 处没有活跃语句和词", timestamp)
		return
	}

	if segment != nil {
		role := transcript.RoleForSpeaker(segment.SpeakerID)
		text := playback.HighlightOccurrence(segment.Text, segment, word, bundle.WordTiming)
		fmt.Printf("%.2fs %s [%s]: %s\n", timestamp, segment.ID, role, text)
	}
	if word != nil {
		fmt.Printf("%.2fs 当前词: %q (%.2f ~ %.2f)\n", timestamp, word.Word, word.Start, word.End)
	}
}
