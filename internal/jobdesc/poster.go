package jobdesc

import (
	"fmt"
	"log"
	"strings"

	"github.com/avargas/hireflow/internal/types"
)

// Platforms a job description can be formatted for.
const (
	PlatformLinkedIn = "linkedin"
	PlatformTwitter  = "twitter"
	PlatformInternal = "internal"
)

const twitterLimit = 280

// Poster formats job descriptions into per-platform payloads. Delivery is a
// stub: in preview mode nothing is sent, otherwise the post is logged and
// marked as posted.
type Poster struct {
	Preview   bool
	Platforms []string
}

// NewPoster returns a poster for the given platforms, defaulting to all
// supported platforms.
func NewPoster(preview bool, platforms ...string) *Poster {
	if len(platforms) == 0 {
		platforms = []string{PlatformLinkedIn, PlatformTwitter, PlatformInternal}
	}
	return &Poster{Preview: preview, Platforms: platforms}
}

// Post formats the job description for each configured platform.
func (p *Poster) Post(input types.JobInput, markdown string) []types.PostPreview {
	previews := make([]types.PostPreview, 0, len(p.Platforms))
	for _, platform := range p.Platforms {
		preview := p.format(platform, input, markdown)
		if !p.Preview {
			log.Printf("jobdesc: posted %q to %s (stub delivery)", preview.Title, platform)
			preview.Posted = true
		}
		previews = append(previews, preview)
	}
	return previews
}

func (p *Poster) format(platform string, input types.JobInput, markdown string) types.PostPreview {
	title := postTitle(input)
	switch platform {
	case PlatformTwitter:
		return types.PostPreview{
			Platform: platform,
			Title:    title,
			Body:     truncate(fmt.Sprintf("We're hiring: %s in %s. Apply now.", title, orDefault(input.Location, "multiple locations")), twitterLimit),
		}
	case PlatformLinkedIn:
		return types.PostPreview{
			Platform: platform,
			Title:    title,
			Body:     fmt.Sprintf("%s\n\n%s", title, markdown),
		}
	default:
		return types.PostPreview{
			Platform: platform,
			Title:    title,
			Body:     markdown,
		}
	}
}

func postTitle(input types.JobInput) string {
	if strings.TrimSpace(input.Seniority) == "" {
		return input.Title
	}
	return fmt.Sprintf("%s %s", capitalize(input.Seniority), input.Title)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
