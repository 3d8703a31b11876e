// Package psqlbuilder pins the squirrel statement builder to Postgres
// dollar placeholders so repositories never set the format themselves.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT statement with $N placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT statement with $N placeholders
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE statement with $N placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE statement with $N placeholders
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
