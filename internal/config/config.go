package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Conversation 单个就诊会话的数据文件清单
type Conversation struct {
	Name           string `yaml:"Name"`           // 会话名称，唯一
	TranscriptPath string `yaml:"TranscriptPath"` // 逐句转写文件（JSON 数组）
	WordTimingPath string `yaml:"WordTimingPath"` // 逐词时间戳文件（JSON 数组）
	SummaryPath    string `yaml:"SummaryPath"`    // SOAP 摘要文件（JSON 对象）
	AudioPath      string `yaml:"AudioPath"`      // 音频文件，仅供外部播放器使用
}

type Viewer struct {
	DefaultConversation string `yaml:"DefaultConversation"` // 默认加载的会话，为空则取第一个
}

type Config struct {
	Conversations []Conversation `yaml:"Conversations"`
	Viewer        Viewer         `yaml:"Viewer"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if len(c.Conversations) == 0 {
		return fmt.Errorf("Conversations 不能为空")
	}

	seen := make(map[string]bool)
	for i, conv := range c.Conversations {
		if conv.Name == "" {
			return fmt.Errorf("Conversations[%d].Name 不能为空", i)
		}
		if seen[conv.Name] {
			return fmt.Errorf("Conversations 中存在重复名称: %s", conv.Name)
		}
		seen[conv.Name] = true

		if conv.TranscriptPath == "" {
			return fmt.Errorf("Conversations[%d].TranscriptPath 不能为空", i)
		}
		if conv.WordTimingPath == "" {
			return fmt.Errorf("Conversations[%d].WordTimingPath 不能为空", i)
		}
		if conv.SummaryPath == "" {
			return fmt.Errorf("Conversations[%d].SummaryPath 不能为空", i)
		}
	}

	if c.Viewer.DefaultConversation != "" && !seen[c.Viewer.DefaultConversation] {
		return fmt.Errorf("Viewer.DefaultConversation 引用了不存在的会话: %s", c.Viewer.DefaultConversation)
	}

	return nil
}

// FindConversation 按名称查找会话，未找到返回 nil
func (c *Config) FindConversation(name string) *Conversation {
	for i := range c.Conversations {
		if c.Conversations[i].Name == name {
			return &c.Conversations[i]
		}
	}
	return nil
}

// DefaultConversation 返回默认会话，配置未指定时取第一个
func (c *Config) DefaultConversation() *Conversation {
	if c.Viewer.DefaultConversation != "" {
		if conv := c.FindConversation(c.Viewer.DefaultConversation); conv != nil {
			return conv
		}
	}
	return &c.Conversations[0]
}
