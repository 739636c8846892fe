package schedule

import "github.com/techsummit/backend/internal/models"

func intPtr(v int) *int { return &v }

func sess(id int, track, title, desc, start, end string, speaker *int) models.Session {
	return models.Session{
		ID:          id,
		Title:       title,
		Description: desc,
		Track:       track,
		StartTime:   start,
		EndTime:     end,
		Room:        "Hall A",
		SpeakerID:   speaker,
	}
}

// twelveSessions mirrors the shape of the conference catalog: six sessions per day,
// two of them on the Security track, both on day one.
func twelveSessions() []models.Session {
	return []models.Session{
		sess(1, "AI & Machine Learning", "The Future of AI", "Large models in production.", "09:00", "10:00", intPtr(1)),
		sess(2, "Security", "Zero Trust at Scale", "Rolling out zero trust networks.", "09:00", "10:00", intPtr(2)),
		sess(3, "Cloud Native", "Kubernetes Operators", "Automating cloud operations.", "10:30", "11:30", intPtr(3)),
		sess(4, "Security", "Supply Chain Attacks", "Hardening CI/CD pipelines.", "10:30", "11:30", intPtr(4)),
		sess(5, "Web Development", "React Server Components", "Modern frontend patterns.", "13:00", "14:00", intPtr(5)),
		sess(6, "AI & Machine Learning", "MLOps in Practice", "Deployment of machine learning models.", "14:30", "15:30", intPtr(1)),
		sess(7, "Blockchain", "Web3 Beyond Hype", "Practical blockchain applications.", "09:00", "10:00", intPtr(6)),
		sess(8, "Cloud Native", "Edge Computing Patterns", "Running workloads at the edge with IoT devices.", "09:00", "10:00", intPtr(3)),
		sess(9, "Emerging Tech", "Quantum Computing Primer", "What quantum means for developers.", "10:30", "11:30", intPtr(7)),
		sess(10, "Web Development", "JavaScript Performance", "Optimization techniques for the web.", "13:00", "14:00", intPtr(5)),
		sess(11, "DevOps", "Platform Engineering", "Scaling developer platforms.", "14:30", "15:30", intPtr(8)),
		sess(12, "AI & Machine Learning", "Responsible AI", "Ethics and governance for AI systems.", "16:00", "17:00", nil),
	}
}

func ids(sessions []models.Session) []int {
	out := make([]int, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}
