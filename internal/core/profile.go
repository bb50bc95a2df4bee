package core

import (
	"strings"
	"time"
)

// UserProfile is the single local profile; the app has no accounts or
// authentication, only one user per installation.
type UserProfile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	BirthDate Date      `json:"birthDate"`
	Gender    string    `json:"gender,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	City      string    `json:"city,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return ErrEmptyName
	}
	if email := strings.TrimSpace(p.Email); email != "" {
		if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
			return &ValidationError{Reason: "invalid email"}
		}
	}
	return nil
}

// FinancialTip is a read-only educational entry. The seed set is installed
// by migration alongside the default categories.
type FinancialTip struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"` // saving, budgeting, investing, debt, emergency, general
	Icon       string   `json:"icon"`
	ReadTime   int      `json:"readTime,omitempty"` // minutes
	Difficulty string   `json:"difficulty,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}
