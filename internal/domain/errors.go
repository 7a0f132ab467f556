package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrForbidden          = errors.New("acesso negado")
	ErrInvalidCredentials = errors.New("username ou senha inválidos")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
)
