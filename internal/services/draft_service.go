package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// TextGenerator is the external language-model collaborator. The single real
// implementation wraps Gemini; tests inject a fake.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client llms.Model
}

// NewGeminiGenerator initializes the Gemini client once; the same client is
// reused for every request.
func NewGeminiGenerator(ctx context.Context, apiKey string) (TextGenerator, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGenerator{client: llm}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.client, prompt)
}

// Draft is a generated subject/body pair, not yet sent.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DraftProfile carries the profile fields the drafting prompt needs. The
// caller has already validated that University, Role and Bio are non-empty.
type DraftProfile struct {
	Name          string
	University    string
	Role          string
	Bio           string
	GithubLink    string
	PortfolioLink string
}

type DraftService struct {
	Generator TextGenerator
}

func NewDraftService(generator TextGenerator) *DraftService {
	return &DraftService{Generator: generator}
}

// Draft produces an application email for the given profile and company.
// Any provider failure falls back to the deterministic template, so a usable
// draft is always returned.
func (s *DraftService) Draft(ctx context.Context, p DraftProfile, companyName string) Draft {
	prompt := buildDraftPrompt(p, companyName)

	raw, err := s.Generator.Generate(ctx, prompt)
	if err == nil {
		draft, perr := parseDraft(raw)
		if perr == nil {
			return draft
		}
		err = perr
	}
	log.Printf("Gemini generation failed, using fallback template: %v", err)
	return fallbackDraft(p, companyName)
}

func buildDraftPrompt(p DraftProfile, companyName string) string {
	var b strings.Builder
	b.WriteString("You are a professional career assistant helping a student write a cold email for an internship application.\n\n")
	b.WriteString("Student Details:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- University: %s\n", p.University)
	fmt.Fprintf(&b, "- Role Applying For: %s\n", p.Role)
	fmt.Fprintf(&b, "- Bio: %s\n", p.Bio)
	if p.GithubLink != "" {
		fmt.Fprintf(&b, "- GitHub: %s\n", p.GithubLink)
	}
	if p.PortfolioLink != "" {
		fmt.Fprintf(&b, "- Portfolio: %s\n", p.PortfolioLink)
	}
	b.WriteString("\nTarget Company:\n")
	fmt.Fprintf(&b, "- Name: %s\n", companyName)
	b.WriteString("\nTask:\nGenerate a professional, persuasive, and concise email.\n")
	if p.GithubLink != "" || p.PortfolioLink != "" {
		b.WriteString("Mention the student's links naturally in the body.\n")
	}
	b.WriteString("\nOutput Format (JSON only):\n")
	b.WriteString("{\n    \"subject\": \"Email Subject Line\",\n    \"body\": \"Email Body Text (use \\n for newlines)\"\n}\n\n")
	b.WriteString("Do not include any other text or markdown formatting. Just the JSON.")
	return b.String()
}

// parseDraft expects a strict two-field JSON object, tolerating markdown
// code-fence wrapping around it.
func parseDraft(raw string) (Draft, error) {
	cleaned := stripMarkdownFences(raw)

	var draft Draft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return Draft{}, fmt.Errorf("failed to parse draft JSON: %w", err)
	}
	if draft.Subject == "" || draft.Body == "" {
		return Draft{}, fmt.Errorf("draft JSON missing subject or body")
	}
	return draft, nil
}

func stripMarkdownFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// fallbackDraft synthesizes the email deterministically from data the caller
// already validated. It never fails.
func fallbackDraft(p DraftProfile, companyName string) Draft {
	var links []string
	if p.GithubLink != "" {
		links = append(links, p.GithubLink)
	}
	if p.PortfolioLink != "" {
		links = append(links, p.PortfolioLink)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear Hiring Manager at %s,\n\n", companyName)
	fmt.Fprintf(&b, "I am writing to express my interest in the %s internship position.\n\n", p.Role)
	fmt.Fprintf(&b, "I am a student at %s with a passion for software development. %s\n\n", p.University, p.Bio)
	if len(links) > 0 {
		fmt.Fprintf(&b, "You can find my work here: %s\n\n", strings.Join(links, " | "))
	}
	b.WriteString("Please find my CV and supporting letter attached.\n\n")
	fmt.Fprintf(&b, "Best regards,\n%s", p.Name)

	return Draft{
		Subject: fmt.Sprintf("Internship Application - %s - %s", p.Role, p.Name),
		Body:    b.String(),
	}
}
