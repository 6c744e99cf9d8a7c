package transcript

// Role 说话人的语义角色，由说话人标签推导，不做持久化
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleUnknown Role = "unknown"
)

// Speaker 说话人条目
type Speaker struct {
	ID   string
	Name string
	Role Role
}

// RoleForSpeaker 按固定标签规则推导说话人角色
func RoleForSpeaker(speakerID string) Role {
	switch speakerID {
	case "Doctor", "SPEAKER_00":
		return RoleDoctor
	case "Patient", "SPEAKER_01":
		return RolePatient
	default:
		return RoleUnknown
	}
}

// BuildSpeakers 从语句列表提取说话人，按首次出现排序，
// 无法识别角色的标签不进入列表
func BuildSpeakers(segments []Segment) []Speaker {
	seen := make(map[string]bool)
	speakers := make([]Speaker, 0)
	for _, segment := range segments {
		if seen[segment.SpeakerID] {
			continue
		}
		seen[segment.SpeakerID] = true

		role := RoleForSpeaker(segment.SpeakerID)
		if role == RoleUnknown {
			continue
		}
		speakers = append(speakers, Speaker{
			ID:   segment.SpeakerID,
			Name: segment.SpeakerID,
			Role: role,
		})
	}
	return speakers
}
