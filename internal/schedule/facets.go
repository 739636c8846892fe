package schedule

import (
	"sort"
	"strconv"
	"strings"

	"github.com/techsummit/backend/internal/models"
)

// topicKeywords are the domain terms searched for when deriving topic facets.
var topicKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "ml",
	"cloud", "kubernetes", "docker", "microservices",
	"security", "cybersecurity", "zero trust",
	"react", "frontend", "javascript", "web",
	"blockchain", "web3", "crypto",
	"devops", "ci/cd", "deployment",
	"quantum", "edge computing", "iot",
	"performance", "optimization", "scaling",
}

// Option is one selectable value of a facet.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Facets holds the filter options derived from a session list.
type Facets struct {
	Tracks   []Option `json:"tracks"`
	Topics   []Option `json:"topics"`
	Speakers []Option `json:"speakers"`
}

// ExtractFacets derives track, topic and speaker options from sessions.
func ExtractFacets(sessions []models.Session) Facets {
	return Facets{
		Tracks:   trackOptions(sessions),
		Topics:   topicOptions(sessions),
		Speakers: speakerOptions(sessions),
	}
}

func trackOptions(sessions []models.Session) []Option {
	counts := make(map[string]int)
	var order []string
	for _, s := range sessions {
		if _, seen := counts[s.Track]; !seen {
			order = append(order, s.Track)
		}
		counts[s.Track]++
	}
	out := make([]Option, 0, len(order))
	for _, track := range order {
		out = append(out, Option{Value: track, Label: track, Count: counts[track]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func topicOptions(sessions []models.Session) []Option {
	seen := make(map[string]bool)
	var found []string
	for _, s := range sessions {
		text := strings.ToLower(s.Title + " " + s.Description)
		track := strings.ToLower(s.Track)
		for _, kw := range topicKeywords {
			if seen[kw] {
				continue
			}
			if strings.Contains(text, kw) || strings.Contains(track, kw) {
				seen[kw] = true
				found = append(found, kw)
			}
		}
	}

	out := make([]Option, 0, len(found))
	for _, kw := range found {
		n := topicCount(sessions, kw)
		if n == 0 {
			continue
		}
		out = append(out, Option{Value: kw, Label: capitalize(kw), Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// topicCount counts sessions whose title, description or track contains kw.
// A keyword spanning the title/description boundary qualifies a topic but is not counted.
func topicCount(sessions []models.Session, kw string) int {
	n := 0
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.Title), kw) ||
			strings.Contains(strings.ToLower(s.Description), kw) ||
			strings.Contains(strings.ToLower(s.Track), kw) {
			n++
		}
	}
	return n
}

func speakerOptions(sessions []models.Session) []Option {
	counts := make(map[int]int)
	var order []int
	for _, s := range sessions {
		if s.SpeakerID == nil {
			continue
		}
		id := *s.SpeakerID
		if _, ok := counts[id]; !ok {
			order = append(order, id)
		}
		counts[id]++
	}
	out := make([]Option, 0, len(order))
	for _, id := range order {
		out = append(out, Option{Value: strconv.Itoa(id), Label: placeholderLabel(id), Count: counts[id]})
	}
	return out
}

// WithSpeakerNames returns a copy of f whose speaker labels come from speakers.
// Options whose id is not in the directory keep the placeholder label.
func (f Facets) WithSpeakerNames(speakers []models.Speaker) Facets {
	names := make(map[string]string, len(speakers))
	for _, sp := range speakers {
		names[strconv.Itoa(sp.ID)] = sp.Name
	}
	relabeled := make([]Option, len(f.Speakers))
	for i, opt := range f.Speakers {
		if name, ok := names[opt.Value]; ok && name != "" {
			opt.Label = name
		}
		relabeled[i] = opt
	}
	f.Speakers = relabeled
	return f
}

func placeholderLabel(id int) string {
	return "Speaker " + strconv.Itoa(id)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
