// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-sweet-shop/models"
)

var (
	usersTable  = models.User{}.TableName()
	sweetsTable = models.Sweet{}.TableName()

	userColumns  = []string{"id", "username", "email", "password_hash", "created_at"}
	sweetColumns = []string{"id", "name", "category", "price", "quantity", "created_at", "updated_at"}
)

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, nullString(user.Email), user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertSweetQuery(b sq.StatementBuilderType, sweet models.Sweet) (string, []any, error) {
	return b.Insert(sweetsTable).
		Columns("name", "category", "price", "quantity", "created_at", "updated_at").
		Values(sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.CreatedAt, sweet.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectSweetsQuery(b sq.StatementBuilderType, filter models.SweetFilter) (string, []any, error) {
	query := b.Select(sweetColumns...).From(sweetsTable)

	if filter.Name != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Name)) + "%"
		query = query.Where(sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern))
	}
	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	if filter.MinPrice != nil {
		query = query.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		query = query.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	return query.OrderBy("id").ToSql()
}

func buildSelectSweetByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(sweetColumns...).
		From(sweetsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateSweetQuery(b sq.StatementBuilderType, sweet models.Sweet) (string, []any, error) {
	return b.Update(sweetsTable).
		Set("name", sweet.Name).
		Set("category", sweet.Category).
		Set("price", sweet.Price).
		Set("quantity", sweet.Quantity).
		Set("updated_at", sweet.UpdatedAt).
		Where(sq.Eq{"id": sweet.ID}).
		ToSql()
}

func buildDeleteSweetQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(sweetsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user  models.User
		email sql.NullString
	)
	if err := row.Scan(&user.UserID, &user.Username, &email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.Email = email.String

	return user, nil
}

func scanSweet(row rowScanner) (models.Sweet, error) {
	var sweet models.Sweet
	err := row.Scan(&sweet.ID, &sweet.Name, &sweet.Category, &sweet.Price, &sweet.Quantity, &sweet.CreatedAt, &sweet.UpdatedAt)

	return sweet, err
}
