package database

import "errors"

var (
	// ErrDuplicateEmail: violação de unique em leads.email (pq 23505).
	// Condição benigna: o fluxo de captura trata como sucesso.
	ErrDuplicateEmail = errors.New("lead já cadastrado com este email")

	ErrLinkNotFound = errors.New("short link não encontrado")
)
