// Package migrations carries the versioned schema files compiled into the
// binary so deploys never depend on a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
