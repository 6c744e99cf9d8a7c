package playback

// WordTiming 逐词时间戳，加载后不可变
//
// 同一词可能在序列中多次出现，这是高亮逻辑需要区分
// 第几次出现的根源。
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
