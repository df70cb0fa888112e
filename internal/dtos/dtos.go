package dtos

// ProfileUpdateRequest is a patch: nil means "leave the column unchanged",
// a present empty string explicitly clears it.
type ProfileUpdateRequest struct {
	FullName      *string `json:"fullName"`
	University    *string `json:"university"`
	RoleApplied   *string `json:"roleApplied"`
	GithubLink    *string `json:"githubLink"`
	PortfolioLink *string `json:"portfolioLink"`
	Bio           *string `json:"bio"`
}

type CompanyCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address"`
	AcceptsInterns *bool  `json:"acceptsInterns"`
}

// CompanyID is validated by hand in the handler so the "Missing company_id"
// error string stays stable.
type GenerateRequest struct {
	CompanyID string `json:"company_id"`
}

type SendRequest struct {
	CompanyID    string `json:"company_id"`
	EmailSubject string `json:"email_subject"`
	EmailBody    string `json:"email_body"`
}
