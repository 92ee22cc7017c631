// Package safeerror maps backend failures to the fixed set of
// user-facing Portuguese messages. No caller may put a raw error
// message on the wire; everything funnels through Message.
package safeerror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// The complete user-facing vocabulary.
const (
	MsgDuplicate       = "Este agendamento já existe"
	MsgForeignKey      = "Erro de referência nos dados"
	MsgPermission      = "Acesso não autorizado"
	MsgNotFound        = "Nenhum resultado encontrado"
	MsgBadCredentials  = "Email ou senha incorretos"
	MsgEmailRegistered = "Este email já está cadastrado"
	MsgEmailUnverified = "Por favor, confirme seu email antes de fazer login"
	MsgGeneric         = "Ocorreu um erro. Por favor, tente novamente."
)

// Sentinel errors callers can wrap to select an auth-specific message.
var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
)

// Message resolves err to one of the fixed messages above. Unknown
// errors collapse to the generic message so that backend detail never
// reaches a client.
func Message(err error) string {
	if err == nil {
		return MsgGeneric
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return MsgBadCredentials
	case errors.Is(err, ErrAlreadyRegistered):
		return MsgEmailRegistered
	case errors.Is(err, ErrEmailNotConfirmed):
		return MsgEmailUnverified
	case errors.Is(err, gorm.ErrRecordNotFound):
		return MsgNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return MsgDuplicate
		case "23503":
			return MsgForeignKey
		case "42501":
			return MsgPermission
		}
	}

	// Row-level policy violations surface as plain permission text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "permission denied") || strings.Contains(msg, "policy") {
		return MsgPermission
	}

	return MsgGeneric
}
