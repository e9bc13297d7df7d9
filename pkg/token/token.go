// Package token genera los identificadores opacos usados como bearer token
// de respaldo cuando el cliente no puede usar cookies de sesión.
package token

import (
	"strings"

	"github.com/google/uuid"
)

// NewOpaque devuelve un token opaco con prefijo "tok_". El valor no codifica
// nada: la validez la decide únicamente el TokenStore que lo emitió.
func NewOpaque() string {
	return "tok_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
