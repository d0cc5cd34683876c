// Package migrations holds the revision-chained SQL schema migrations and the
// tooling that applies them.
//
// Each file declares its revision id and the revision it follows in a header:
//
//	-- revision: 0002_weekly_uniqueness
//	-- down_revision: 0001_initial_schema
//	-- branch_labels: none
//	-- depends_on: none
//
// followed by a "-- +migrate Up" section and an optional "-- +migrate Down"
// section. The applied revision is stored in the ffliq_version table.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

//go:embed template.sql.tmpl
var templateText string
