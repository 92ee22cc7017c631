package safeerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, MsgGeneric},
		{"unknown error", errors.New("dial tcp: connection refused"), MsgGeneric},
		{"invalid credentials", ErrInvalidCredentials, MsgBadCredentials},
		{"wrapped invalid credentials", fmt.Errorf("login: %w", ErrInvalidCredentials), MsgBadCredentials},
		{"already registered", ErrAlreadyRegistered, MsgEmailRegistered},
		{"email not confirmed", ErrEmailNotConfirmed, MsgEmailUnverified},
		{"record not found", gorm.ErrRecordNotFound, MsgNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, MsgDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, MsgForeignKey},
		{"insufficient privilege", &pgconn.PgError{Code: "42501"}, MsgPermission},
		{"other pg code", &pgconn.PgError{Code: "22001"}, MsgGeneric},
		{"wrapped pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), MsgDuplicate},
		{"permission denied text", errors.New("pq: permission denied for table bookings"), MsgPermission},
		{"policy violation text", errors.New("new row violates row-level security policy"), MsgPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestMessageNeverEchoesInput(t *testing.T) {
	// Whatever detail an error carries, it must not leak to a client.
	leaky := errors.New(`duplicate key value violates unique constraint "users_email_key" (email=joao@example.com)`)
	msg := Message(leaky)
	assert.Equal(t, MsgGeneric, msg)
	assert.NotContains(t, msg, "joao@example.com")
}
