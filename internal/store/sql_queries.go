package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/ymatsuda/go-api-sample/models"
)

// userColumns is the canonical column order used by every user query and
// matched by scanUser.
var userColumns = []string{"id", "name", "email", "password"}

const returningUserColumns = "RETURNING id, name, email, password"

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.sb.
		Insert(user.TableName()).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix(returningUserColumns)
}

func (db *DB) selectUserQuery(where sq.Eq) sq.SelectBuilder {
	return db.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where)
}

func (db *DB) selectAllUsersQuery() sq.SelectBuilder {
	return db.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id")
}

// updateUserQuery builds a partial UPDATE from the given column changes.
// Only the provided columns appear in the SET clause.
func (db *DB) updateUserQuery(userID int64, changes map[string]any) sq.UpdateBuilder {
	return db.sb.
		Update(models.User{}.TableName()).
		SetMap(changes).
		Where(sq.Eq{"id": userID}).
		Suffix(returningUserColumns)
}

func (db *DB) deleteUserQuery(userID int64) sq.DeleteBuilder {
	return db.sb.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": userID})
}
