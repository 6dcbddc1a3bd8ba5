package interview

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/types"
)

// sectionStub serves a canned response per category keyword found in the
// system prompt. Safe for concurrent use.
type sectionStub struct {
	mu        sync.Mutex
	responses map[string]string
	errOn     map[string]error
	calls     int
}

func (s *sectionStub) Complete(_ context.Context, systemPrompt, _ string, _ llm.Options) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	for category, err := range s.errOn {
		if strings.Contains(systemPrompt, category+" interview round") {
			return "", err
		}
	}
	for category, response := range s.responses {
		if strings.Contains(systemPrompt, category+" interview round") {
			return response, nil
		}
	}
	return "", errors.New("no stubbed response")
}

func (s *sectionStub) Close() error { return nil }

func questionsJSON(category string, scores ...int) string {
	var sb strings.Builder
	sb.WriteString(`{"questions": [`)
	for i, score := range scores {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"id": "", "category": "", "question": "Describe a `)
		sb.WriteString(category)
		sb.WriteString(` challenge you solved.", "expected_answer": "specifics", "follow_up_questions": [], "difficulty": 3, "skills_tested": [], "rationale": "depth check", "score": `)
		sb.WriteString(strconv.Itoa(score))
		sb.WriteString(`}`)
	}
	sb.WriteString(`]}`)
	return sb.String()
}

func allSectionsStub() *sectionStub {
	return &sectionStub{responses: map[string]string{
		"technical":     questionsJSON("technical", 10, 10, 10, 10, 10),
		"coding":        questionsJSON("coding", 20, 20, 20),
		"system design": questionsJSON("system design", 25, 25),
		"behavioral":    questionsJSON("behavioral", 10, 10, 10, 10),
	}}
}

func seniorInput() GuideInput {
	return GuideInput{
		CandidateName: "Jane Doe",
		Resume:        &types.ParsedResume{Skills: []string{"Go", "PostgreSQL"}},
		Job: &types.JobDescription{
			JobTitle:        "Senior Backend Engineer",
			ExperienceLevel: "senior",
			Qualifications:  []string{"5+ years backend", "Go in production"},
		},
	}
}

func TestGenerateGuide_SeniorGetsAllSections(t *testing.T) {
	guide, err := GenerateGuide(context.Background(), allSectionsStub(), llm.Options{}, seniorInput())
	require.NoError(t, err)

	require.Len(t, guide.Sections, 4)
	names := make([]string, 0, 4)
	for _, s := range guide.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Technical Knowledge", "Coding", "System Design", "Behavioral"}, names)

	// 50 + 60 + 50 + 40 across the four sections.
	assert.Equal(t, 200, guide.TotalScore)
	assert.Equal(t, 140, guide.PassingScore)
	assert.Equal(t, "Jane Doe", guide.CandidateName)
	assert.False(t, guide.InterviewDate.IsZero())
}

func TestGenerateGuide_JuniorSkipsSystemDesign(t *testing.T) {
	input := seniorInput()
	input.Job.ExperienceLevel = "entry level"

	guide, err := GenerateGuide(context.Background(), allSectionsStub(), llm.Options{}, input)
	require.NoError(t, err)

	require.Len(t, guide.Sections, 3)
	for _, s := range guide.Sections {
		assert.NotEqual(t, "System Design", s.Name)
	}
}

func TestGenerateGuide_FailedSectionSkipped(t *testing.T) {
	stub := allSectionsStub()
	stub.errOn = map[string]error{"coding": &llm.TransportError{Message: "timeout"}}

	guide, err := GenerateGuide(context.Background(), stub, llm.Options{}, seniorInput())
	require.NoError(t, err)

	require.Len(t, guide.Sections, 3)
	for _, s := range guide.Sections {
		assert.NotEqual(t, "Coding", s.Name)
	}
	assert.Equal(t, 140, guide.TotalScore)
}

func TestGenerateGuide_AllSectionsFail(t *testing.T) {
	stub := &sectionStub{}

	_, err := GenerateGuide(context.Background(), stub, llm.Options{}, seniorInput())
	require.Error(t, err)

	var ge *GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Contains(t, ge.Error(), "no sections could be generated")
}

func TestGenerateGuide_RequiresJob(t *testing.T) {
	_, err := GenerateGuide(context.Background(), allSectionsStub(), llm.Options{}, GuideInput{CandidateName: "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job description is required")
}

func TestGenerateGuide_AssignsIDsAndCategories(t *testing.T) {
	guide, err := GenerateGuide(context.Background(), allSectionsStub(), llm.Options{}, seniorInput())
	require.NoError(t, err)

	for _, section := range guide.Sections {
		for _, q := range section.Questions {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Category)
		}
	}
}

func TestGenerateGuide_SectionScoring(t *testing.T) {
	guide, err := GenerateGuide(context.Background(), allSectionsStub(), llm.Options{}, seniorInput())
	require.NoError(t, err)

	for _, section := range guide.Sections {
		total := 0
		for _, q := range section.Questions {
			total += q.Score
		}
		assert.Equal(t, total, section.TotalScore)
		assert.Equal(t, int(float64(total)*0.7), section.PassingScore)
	}
}

func TestSpecialNotes(t *testing.T) {
	notes := specialNotes(&types.OAResult{
		Status:          "failed",
		TechnicalRating: 0.4,
		PassionRating:   0.9,
	})
	require.Len(t, notes, 3)
	assert.Contains(t, notes[0], "technical rating was low")

	assert.Nil(t, specialNotes(nil))
}

func TestOANotes_WeakCategories(t *testing.T) {
	note := oaNotes(&types.OAResult{
		Status:                "passed",
		TotalScore:            72,
		TechnicalRating:       0.8,
		PassionRating:         0.7,
		PerformanceByCategory: map[string]float64{"coding": 0.9, "system design": 0.4},
	})
	assert.Contains(t, note, "weak categories: system design")

	assert.Equal(t, "no online assessment on file", oaNotes(nil))
}
