package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ===============================
// Erros de negócio
// ===============================

// Kind classifica o erro para o mapeamento HTTP nos handlers.
type Kind string

const (
	KindValidation Kind = "validation" // entrada malformada → 400
	KindNotFound   Kind = "not_found"  // recurso inexistente → 404
	KindConflict   Kind = "conflict"   // horário já ocupado → 409
	KindPolicy     Kind = "policy"     // regra de negócio violada → 422
	KindConfig     Kind = "config"     // defeito de configuração → 500
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness mantém o comportamento antigo (regra violada)
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindPolicy, Code: code}
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFoundCode(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrPolicy(code string) error {
	return BusinessError{Kind: KindPolicy, Code: code}
}

func ErrConfig(code string) error {
	return BusinessError{Kind: KindConfig, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

// IsExclusionConflict detecta violação de constraint de unicidade/exclusão
// do Postgres (corrida perdida no commit do horário).
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 unique_violation, 23P01 exclusion_violation
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
