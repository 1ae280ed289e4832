package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-diary/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "username", "email", "password_hash", "role", "created_at"}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("username", "email", "password_hash", "role").
		Values(user.Username, user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING id, created_at").
		ToSql()
}

// buildSelectUserQuery selects one account matching where, e.g.
// sq.Eq{"email": email}.
func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql()
}

func buildUpdatePasswordQuery(userID int64, passwordHash string) (string, []any, error) {
	return psql.
		Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSelectDiaryQuery selects the document of one account. With forUpdate
// the row stays locked until the surrounding transaction ends.
func buildSelectDiaryQuery(userID int64, forUpdate bool) (string, []any, error) {
	q := psql.
		Select("document").
		From("diaries").
		Where(sq.Eq{"user_id": userID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

func buildUpsertDiaryQuery(userID int64, document []byte) (string, []any, error) {
	return psql.
		Insert("diaries").
		Columns("user_id", "document").
		Values(userID, document).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()").
		ToSql()
}

func buildDiaryExistsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("1").
		From("diaries").
		Where(sq.Eq{"user_id": userID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
}
