package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CategoryRequest is the body of POST /api/categories.
// Color and Emoji are optional.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// EntryRequest is the body of POST /api/entries.
type EntryRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID int64  `json:"categoryId"`
}

// EntryUpdateRequest is the body of PUT /api/entries/{id}.
// A nil field keeps the stored value.
type EntryUpdateRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	CategoryID *int64  `json:"categoryId,omitempty"`
}

// IsEmpty reports whether the request changes no field at all.
func (r EntryUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil && r.CategoryID == nil
}
