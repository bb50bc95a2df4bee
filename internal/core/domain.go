package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

type (
	// Kind distinguishes money coming in from money going out.
	Kind string

	// Date is a calendar day with no time component. The zero value means
	// "no date" for optional fields such as a goal deadline.
	Date struct {
		time.Time
	}

	// Money is an amount in whole currency units. The tracked currency has
	// no sub-unit handling, so arithmetic stays in int64.
	Money struct {
		Units int64
	}

	// Transaction is a single income or expense record. The category
	// fields are a snapshot taken at creation time so later category edits
	// do not rewrite history.
	Transaction struct {
		ID            string    `json:"id"`
		Kind          Kind      `json:"type"`
		Amount        Money     `json:"amount"`
		CategoryID    string    `json:"categoryId"`
		CategoryName  string    `json:"categoryName"`
		CategoryIcon  string    `json:"categoryIcon"`
		CategoryColor string    `json:"categoryColor"`
		Date          Date      `json:"date"`
		Note          string    `json:"note,omitempty"`
		CreatedAt     time.Time `json:"createdAt"`
	}

	// Category classifies transactions. A seed set is installed by
	// migration; users may add custom ones.
	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
		Kind  Kind   `json:"type"`
	}

	// Goal is a savings target. Current and Completed are owned by the
	// contribution flow; edits to the other fields never touch them.
	Goal struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		Target      Money     `json:"targetAmount"`
		Current     Money     `json:"currentAmount"`
		Deadline    Date      `json:"deadline"` // zero means no deadline
		Icon        string    `json:"icon"`
		Color       string    `json:"color"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
		Completed   bool      `json:"completed"`
		CompletedAt time.Time `json:"completedAt"`
	}

	// Contribution is an append-only deposit against a goal. Contributions
	// are never edited; deleting a goal removes its contributions.
	Contribution struct {
		ID     string `json:"id"`
		GoalID string `json:"goalId"`
		Amount Money  `json:"amount"`
		Date   Date   `json:"date"`
		Note   string `json:"note,omitempty"`
	}
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidKind   = errors.New("invalid transaction kind")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyName     = errors.New("empty name")
	ErrCategoryInUse = errors.New("category is referenced by transactions")
)

// ValidationError marks input problems that have no dedicated sentinel.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsValidation reports whether err is any kind of input validation
// failure, sentinel or not.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, sentinel := range []error{ErrInvalidAmount, ErrInvalidKind, ErrInvalidDate, ErrEmptyName} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// NewID returns a prefixed unique identifier, e.g. "txn-6f1c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewDate builds a Date at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses the ISO calendar-day format used across the API.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// DaysUntil returns the whole days from asOf to d, rounding partial days
// up. Negative when d is in the past.
func (d Date) DaysUntil(asOf time.Time) int {
	diff := d.Sub(asOf)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	}
	return ErrInvalidKind
}

func (m Money) Validate() error {
	if m.Units <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return &ValidationError{Reason: "empty category id"}
	}
	if len(t.Note) > 200 {
		return &ValidationError{Reason: "note too long (max 200 characters)"}
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if len(g.Name) > 100 {
		return &ValidationError{Reason: "name too long (max 100 characters)"}
	}
	if err := g.Target.Validate(); err != nil {
		return err
	}
	if g.Current.Units < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Contribution) Validate() error {
	if strings.TrimSpace(c.GoalID) == "" {
		return &ValidationError{Reason: "empty goal id"}
	}
	if err := c.Amount.Validate(); err != nil {
		return err
	}
	if c.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return c.Kind.Validate()
}

// DefaultGoalIcons and DefaultGoalColors back the random pick applied when
// a goal is created without explicit styling.
var DefaultGoalIcons = []string{
	"airplane-outline",
	"home-outline",
	"car-outline",
	"school-outline",
	"medical-outline",
	"gift-outline",
	"phone-portrait-outline",
	"laptop-outline",
	"wallet-outline",
	"heart-outline",
	"fitness-outline",
	"pizza-outline",
}

var DefaultGoalColors = []string{
	"#3CA8E8",
	"#2DD36F",
	"#FFC409",
	"#EB445A",
	"#3DC2FF",
	"#C77CFF",
	"#F77737",
	"#7AC1FF",
	"#56C991",
	"#F4A79D",
}

// MarshalJSON encodes a Date as "YYYY-MM-DD", or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD", an empty string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
