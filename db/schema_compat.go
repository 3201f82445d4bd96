package db

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/jackc/pgx/v5/pgconn"
)

// undefinedColumn est le code SQLSTATE renvoyé par Postgres quand une requête
// référence une colonne absente de la table.
const undefinedColumn = "42703"

// legacySchema mémorise, pour la durée de vie du process, que la table
// inquiries est dans sa forme pré-migration. Une fois détecté, plus aucune
// tentative d'écriture avec les colonnes étendues n'est faite.
var legacySchema atomic.Bool

func UsingLegacySchema() bool {
	return legacySchema.Load()
}

func MarkLegacySchema() {
	legacySchema.Store(true)
}

// ResetSchemaMode ne sert qu'aux tests.
func ResetSchemaMode() {
	legacySchema.Store(false)
}

// IsMissingColumnError détermine si une erreur du store signale une colonne
// inexistante, c'est-à-dire une table inquiries non migrée. Toute autre erreur
// de persistance reste fatale pour l'appelant.
func IsMissingColumnError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == undefinedColumn
	}

	msg := err.Error()
	return strings.Contains(msg, "column") && strings.Contains(msg, "does not exist")
}
