package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists the whole domain in a single local SQLite
// file. All methods map sql.ErrNoRows to core.ErrNotFound.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// --- transactions ---

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions
			(id, kind, amount_units, category_id, category_name, category_icon, category_color, date, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Kind), t.Amount.Units,
		t.CategoryID, t.CategoryName, t.CategoryIcon, t.CategoryColor,
		t.Date.String(), t.Note, formatTime(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"type", t.Kind,
		"amount", t.Amount.Units,
		"category", t.CategoryName)
	return nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, kind, amount_units, category_id, category_name, category_icon, category_color, date, note, created_at
		FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, core.ErrNotFound
		}
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListTransactions returns every transaction, newest day first.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, amount_units, category_id, category_name, category_icon, category_color, date, note, created_at
		FROM transactions ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions SET
			kind = ?, amount_units = ?, category_id = ?, category_name = ?,
			category_icon = ?, category_color = ?, date = ?, note = ?
		WHERE id = ?`,
		string(t.Kind), t.Amount.Units,
		t.CategoryID, t.CategoryName, t.CategoryIcon, t.CategoryColor,
		t.Date.String(), t.Note, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res)
}

// DeleteAllTransactions wipes the ledger. Categories and goals survive.
func (r *SQLiteRepository) DeleteAllTransactions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return fmt.Errorf("delete all transactions: %w", err)
	}
	slog.InfoContext(ctx, "All transactions deleted")
	return nil
}

func (r *SQLiteRepository) CountTransactionsByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = ?`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions by category: %w", err)
	}
	return n, nil
}

// --- categories ---

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, icon, color, kind) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Icon, c.Color, string(c.Kind))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	slog.InfoContext(ctx, "Category created", "id", c.ID, "name", c.Name, "type", c.Kind)
	return nil
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, id string) (core.Category, error) {
	var c core.Category
	var kind string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, icon, color, kind FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Category{}, core.ErrNotFound
		}
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	c.Kind = core.Kind(kind)
	return c, nil
}

// ListCategories returns all categories, optionally restricted to one
// kind when kind is non-empty.
func (r *SQLiteRepository) ListCategories(ctx context.Context, kind core.Kind) ([]core.Category, error) {
	query := `SELECT id, name, icon, color, kind FROM categories`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		var k string
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &k); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Kind = core.Kind(k)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) SearchCategories(ctx context.Context, term string) ([]core.Category, error) {
	pattern := "%" + strings.TrimSpace(term) + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, icon, color, kind FROM categories
		WHERE name LIKE ? COLLATE NOCASE ORDER BY name`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		var k string
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &k); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Kind = core.Kind(k)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

// DeleteCategory refuses to remove a category that still has
// transactions pointing at it.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id string) error {
	n, err := r.CountTransactionsByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return core.ErrCategoryInUse
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res)
}

// ResetCategories drops every category, custom ones included, and
// reinstalls the seed set.
func (r *SQLiteRepository) ResetCategories(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	for _, c := range seedCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, icon, color, kind) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Icon, c.Color, string(c.Kind)); err != nil {
			return fmt.Errorf("reinstall category %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	slog.InfoContext(ctx, "Categories reset to defaults")
	return nil
}

// --- goals ---

func (r *SQLiteRepository) CreateGoal(ctx context.Context, g core.Goal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals
			(id, name, description, target_units, current_units, deadline, icon, color,
			 created_at, updated_at, completed, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.Description, g.Target.Units, g.Current.Units,
		g.Deadline.String(), g.Icon, g.Color,
		formatTime(g.CreatedAt), formatTime(g.UpdatedAt),
		boolInt(g.Completed), formatTime(g.CompletedAt))
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	slog.InfoContext(ctx, "Goal created", "id", g.ID, "name", g.Name, "target", g.Target.Units)
	return nil
}

func (r *SQLiteRepository) GetGoal(ctx context.Context, id string) (core.Goal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, target_units, current_units, deadline, icon, color,
		       created_at, updated_at, completed, completed_at
		FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Goal{}, core.ErrNotFound
		}
		return core.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, target_units, current_units, deadline, icon, color,
		       created_at, updated_at, completed, completed_at
		FROM goals ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) UpdateGoal(ctx context.Context, g core.Goal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE goals SET
			name = ?, description = ?, target_units = ?, current_units = ?,
			deadline = ?, icon = ?, color = ?, updated_at = ?, completed = ?, completed_at = ?
		WHERE id = ?`,
		g.Name, g.Description, g.Target.Units, g.Current.Units,
		g.Deadline.String(), g.Icon, g.Color,
		formatTime(g.UpdatedAt), boolInt(g.Completed), formatTime(g.CompletedAt),
		g.ID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return requireRow(res)
}

// DeleteGoal removes a goal together with its contribution history.
func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete goal: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM goal_contributions WHERE goal_id = ?`, id); err != nil {
		return fmt.Errorf("delete contributions: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete goal: %w", err)
	}
	slog.InfoContext(ctx, "Goal deleted", "id", id)
	return nil
}

// SaveContribution records a contribution and the goal state it produced
// in one transaction, so the running total can never drift from the
// contribution history.
func (r *SQLiteRepository) SaveContribution(ctx context.Context, c core.Contribution, g core.Goal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin contribution: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO goal_contributions (id, goal_id, amount_units, date, note)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.GoalID, c.Amount.Units, c.Date.String(), c.Note); err != nil {
		return fmt.Errorf("insert contribution: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE goals SET current_units = ?, updated_at = ?, completed = ?, completed_at = ?
		WHERE id = ?`,
		g.Current.Units, formatTime(g.UpdatedAt),
		boolInt(g.Completed), formatTime(g.CompletedAt), g.ID)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit contribution: %w", err)
	}

	slog.InfoContext(ctx, "Contribution saved",
		"id", c.ID,
		"goal_id", c.GoalID,
		"amount", c.Amount.Units,
		"goal_completed", g.Completed)
	return nil
}

// ListContributions returns a goal's contributions, newest day first.
func (r *SQLiteRepository) ListContributions(ctx context.Context, goalID string) ([]core.Contribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, goal_id, amount_units, date, note
		FROM goal_contributions WHERE goal_id = ? ORDER BY date DESC, id`, goalID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	var out []core.Contribution
	for rows.Next() {
		var c core.Contribution
		var date string
		if err := rows.Scan(&c.ID, &c.GoalID, &c.Amount.Units, &date, &c.Note); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		if c.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse contribution date %q: %w", date, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributions: %w", err)
	}
	return out, nil
}

// --- profile ---

func (r *SQLiteRepository) GetProfile(ctx context.Context) (core.UserProfile, error) {
	var p core.UserProfile
	var birthDate, createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, username, email, phone, birth_date, gender, bio, city, website, created_at, updated_at
		FROM user_profile LIMIT 1`).
		Scan(&p.ID, &p.FullName, &p.Username, &p.Email, &p.Phone,
			&birthDate, &p.Gender, &p.Bio, &p.City, &p.Website, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.UserProfile{}, core.ErrNotFound
		}
		return core.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if birthDate != "" {
		if p.BirthDate, err = core.ParseDate(birthDate); err != nil {
			return core.UserProfile{}, fmt.Errorf("parse birth date %q: %w", birthDate, err)
		}
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.UserProfile{}, fmt.Errorf("parse profile created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return core.UserProfile{}, fmt.Errorf("parse profile updated_at: %w", err)
	}
	return p, nil
}

// SaveProfile inserts or replaces the single local profile row.
func (r *SQLiteRepository) SaveProfile(ctx context.Context, p core.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profile
			(id, full_name, username, email, phone, birth_date, gender, bio, city, website, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			full_name = excluded.full_name, username = excluded.username,
			email = excluded.email, phone = excluded.phone,
			birth_date = excluded.birth_date, gender = excluded.gender,
			bio = excluded.bio, city = excluded.city, website = excluded.website,
			updated_at = excluded.updated_at`,
		p.ID, p.FullName, p.Username, p.Email, p.Phone,
		p.BirthDate.String(), p.Gender, p.Bio, p.City, p.Website,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	slog.InfoContext(ctx, "Profile saved", "id", p.ID)
	return nil
}

// --- tips ---

func (r *SQLiteRepository) ListTips(ctx context.Context) ([]core.FinancialTip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, category, icon, read_time, difficulty, tags
		FROM tips ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tips: %w", err)
	}
	defer rows.Close()

	var out []core.FinancialTip
	for rows.Next() {
		t, err := scanTip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tip: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tips: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) GetTip(ctx context.Context, id string) (core.FinancialTip, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, category, icon, read_time, difficulty, tags
		FROM tips WHERE id = ?`, id)
	t, err := scanTip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.FinancialTip{}, core.ErrNotFound
		}
		return core.FinancialTip{}, fmt.Errorf("get tip: %w", err)
	}
	return t, nil
}

// --- scanning helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var t core.Transaction
	var kind, date, createdAt string
	err := row.Scan(&t.ID, &kind, &t.Amount.Units,
		&t.CategoryID, &t.CategoryName, &t.CategoryIcon, &t.CategoryColor,
		&date, &t.Note, &createdAt)
	if err != nil {
		return core.Transaction{}, err
	}
	t.Kind = core.Kind(kind)
	if t.Date, err = core.ParseDate(date); err != nil {
		return core.Transaction{}, fmt.Errorf("parse transaction date %q: %w", date, err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.Transaction{}, fmt.Errorf("parse transaction created_at: %w", err)
	}
	return t, nil
}

func scanGoal(row rowScanner) (core.Goal, error) {
	var g core.Goal
	var deadline, createdAt, updatedAt, completedAt string
	var completed int
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Target.Units, &g.Current.Units,
		&deadline, &g.Icon, &g.Color, &createdAt, &updatedAt, &completed, &completedAt)
	if err != nil {
		return core.Goal{}, err
	}
	g.Completed = completed != 0
	if deadline != "" {
		if g.Deadline, err = core.ParseDate(deadline); err != nil {
			return core.Goal{}, fmt.Errorf("parse goal deadline %q: %w", deadline, err)
		}
	}
	if g.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.Goal{}, fmt.Errorf("parse goal created_at: %w", err)
	}
	if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return core.Goal{}, fmt.Errorf("parse goal updated_at: %w", err)
	}
	if completedAt != "" {
		if g.CompletedAt, err = parseTime(completedAt); err != nil {
			return core.Goal{}, fmt.Errorf("parse goal completed_at: %w", err)
		}
	}
	return g, nil
}

func scanTip(row rowScanner) (core.FinancialTip, error) {
	var t core.FinancialTip
	var tags string
	err := row.Scan(&t.ID, &t.Title, &t.Content, &t.Category, &t.Icon,
		&t.ReadTime, &t.Difficulty, &tags)
	if err != nil {
		return core.FinancialTip{}, err
	}
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	return t, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Timestamps are stored at nanosecond precision so a value written by
// the services reads back identical.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// seedCategories mirrors the rows installed by the seed migration. Used
// by ResetCategories to restore the defaults.
var seedCategories = []core.Category{
	{ID: "cat-1", Name: "Alimentación", Icon: "fast-food-outline", Color: "#FF6B6B", Kind: core.Expense},
	{ID: "cat-2", Name: "Transporte", Icon: "car-outline", Color: "#4ECDC4", Kind: core.Expense},
	{ID: "cat-3", Name: "Entretenimiento", Icon: "game-controller-outline", Color: "#95E1D3", Kind: core.Expense},
	{ID: "cat-4", Name: "Salud", Icon: "medical-outline", Color: "#F38181", Kind: core.Expense},
	{ID: "cat-5", Name: "Educación", Icon: "school-outline", Color: "#AA96DA", Kind: core.Expense},
	{ID: "cat-6", Name: "Servicios", Icon: "receipt-outline", Color: "#FCBAD3", Kind: core.Expense},
	{ID: "cat-7", Name: "Compras", Icon: "cart-outline", Color: "#FFFFD2", Kind: core.Expense},
	{ID: "cat-8", Name: "Otros Gastos", Icon: "ellipsis-horizontal-outline", Color: "#A8D8EA", Kind: core.Expense},
	{ID: "cat-9", Name: "Salario", Icon: "cash-outline", Color: "#2DD36F", Kind: core.Income},
	{ID: "cat-10", Name: "Freelance", Icon: "laptop-outline", Color: "#3DC2FF", Kind: core.Income},
	{ID: "cat-11", Name: "Inversiones", Icon: "trending-up-outline", Color: "#FFC409", Kind: core.Income},
	{ID: "cat-12", Name: "Otros Ingresos", Icon: "add-circle-outline", Color: "#92949C", Kind: core.Income},
}
