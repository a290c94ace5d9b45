//go:build tools

package hey

import (
	_ "golang.org/x/tools/cmd/stringer"
)
