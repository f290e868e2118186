package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	unique := fmt.Errorf("insert session: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_navigation_sessions_active_user"})
	fk := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isNotNullConstraintViolation(fmt.Errorf(`null value in column "user_id" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(check))

	assert.True(t, isCheckConstraintViolation(check))
	assert.False(t, isCheckConstraintViolation(fmt.Errorf("connection refused")))
}

func TestClockString(t *testing.T) {
	open := "08:30:00"
	odd := "late"

	assert.Equal(t, "08:30", clockString(&open))
	assert.Equal(t, "late", clockString(&odd))
	assert.Equal(t, "", clockString(nil))
}

func TestToRing(t *testing.T) {
	assert.Nil(t, toRing(nil))

	ring := toRing([][2]float64{{3.38, 6.45}, {3.39, 6.45}, {3.39, 6.46}})
	assert.Len(t, ring, 3)
	assert.Equal(t, 3.38, ring[0].Lon())
	assert.Equal(t, 6.45, ring[0].Lat())
}
