package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniq := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "products_sku_key"}

	assert.True(t, isUniqueViolation(uniq))
	assert.True(t, isUniqueViolation(fmt.Errorf("insertar producto: %w", uniq)),
		"debe detectar el código aunque el error venga envuelto")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}),
		"otras violaciones de constraint no son duplicados")
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}
