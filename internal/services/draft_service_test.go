package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = DraftProfile{
	Name:       "Jane Doe",
	University: "AAU",
	Role:       "Backend Developer",
	Bio:        "I build things in Go.",
}

func TestDraftUsesProviderJSON(t *testing.T) {
	gen := &fakeGenerator{out: `{"subject": "Hello", "body": "World"}`}
	svc := NewDraftService(gen)

	draft := svc.Draft(context.Background(), testProfile, "Acme")

	assert.Equal(t, "Hello", draft.Subject)
	assert.Equal(t, "World", draft.Body)
	assert.Equal(t, 1, gen.calls)
}

func TestDraftStripsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{out: "```json\n{\"subject\": \"S\", \"body\": \"B\"}\n```"}
	svc := NewDraftService(gen)

	draft := svc.Draft(context.Background(), testProfile, "Acme")

	assert.Equal(t, "S", draft.Subject)
	assert.Equal(t, "B", draft.Body)
}

func TestDraftFallbackOnProviderError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("network down")}
	svc := NewDraftService(gen)

	draft := svc.Draft(context.Background(), testProfile, "Acme")

	assert.Equal(t, "Internship Application - Backend Developer - Jane Doe", draft.Subject)
	assert.Contains(t, draft.Body, "Dear Hiring Manager at Acme,")
	assert.Contains(t, draft.Body, "Backend Developer internship position")
	assert.Contains(t, draft.Body, "student at AAU")
	assert.Contains(t, draft.Body, "I build things in Go.")
	assert.Contains(t, draft.Body, "Best regards,\nJane Doe")
}

func TestDraftFallbackOnMalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"not json", "Sure! Here is your email:"},
		{"missing body", `{"subject": "S"}`},
		{"missing subject", `{"body": "B"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDraftService(&fakeGenerator{out: tt.out})
			draft := svc.Draft(context.Background(), testProfile, "Acme")
			assert.Equal(t, "Internship Application - Backend Developer - Jane Doe", draft.Subject)
		})
	}
}

func TestDraftFallbackIsDeterministic(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("unreachable")}
	svc := NewDraftService(gen)

	a := svc.Draft(context.Background(), testProfile, "Acme")
	b := svc.Draft(context.Background(), testProfile, "Acme")

	assert.Equal(t, a, b)
}

func TestDraftFallbackLinks(t *testing.T) {
	p := testProfile
	p.GithubLink = "https://github.com/jane"
	p.PortfolioLink = "https://jane.dev"

	draft := fallbackDraft(p, "Acme")
	assert.Contains(t, draft.Body, "https://github.com/jane | https://jane.dev")

	p.PortfolioLink = ""
	draft = fallbackDraft(p, "Acme")
	assert.Contains(t, draft.Body, "https://github.com/jane")
	assert.NotContains(t, draft.Body, " | ")

	draft = fallbackDraft(testProfile, "Acme")
	assert.NotContains(t, draft.Body, "find my work")
}

func TestBuildDraftPromptLinks(t *testing.T) {
	prompt := buildDraftPrompt(testProfile, "Acme")
	assert.NotContains(t, prompt, "GitHub:")
	assert.NotContains(t, prompt, "naturally")

	p := testProfile
	p.GithubLink = "https://github.com/jane"
	prompt = buildDraftPrompt(p, "Acme")
	assert.Contains(t, prompt, "- GitHub: https://github.com/jane")
	assert.Contains(t, prompt, "naturally")
	assert.Contains(t, prompt, "- Name: Jane Doe")
	assert.Contains(t, prompt, "- Name: Acme")
}

func TestParseDraft(t *testing.T) {
	draft, err := parseDraft("```json\n{\"subject\":\"S\",\"body\":\"line1\\nline2\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "S", draft.Subject)
	assert.Equal(t, "line1\nline2", draft.Body)

	_, err = parseDraft("nope")
	assert.Error(t, err)
}
