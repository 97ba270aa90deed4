// Package migrations embeds the SQL schema files so the binary is
// self-contained and does not depend on a migrations directory at runtime.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
