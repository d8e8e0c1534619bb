// Package sqlmock wraps github.com/DATA-DOG/go-sqlmock with the project's
// standard options so every store test constructs its mock the same way.
package sqlmock

import (
	"fmt"

	"database/sql"
	"database/sql/driver"

	"github.com/DATA-DOG/go-sqlmock"
)

// sliceArgConverter passes []int64 and []string arguments through unchanged
// (the word_id = ANY($1) binding and the senses text[] columns), as the pgx
// stdlib driver accepts them; everything else uses the default conversion.
type sliceArgConverter struct{}

func (sliceArgConverter) ConvertValue(v any) (driver.Value, error) {
	switch v.(type) {
	case []int64, []string:
		return v, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

// NewSQLMock returns a *sql.DB backed by a sqlmock.Sqlmock using regexp
// query matching, so expectations can use the same SQL fragments the real
// query builder produces without needing exact whitespace matches.
func NewSQLMock() (*sql.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.ValueConverterOption(sliceArgConverter{}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sqlmock: %w", err)
	}
	return db, mock, nil
}

// NewSQLMockWithPing is like NewSQLMock but also primes an expected Ping,
// for tests that exercise a store constructor which pings on open.
func NewSQLMockWithPing() (*sql.DB, sqlmock.Sqlmock, error) {
	db, mock, err := NewSQLMock()
	if err != nil {
		return nil, nil, err
	}
	mock.ExpectPing()
	return db, mock, nil
}
