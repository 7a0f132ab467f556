package dto

import "time"

// CategoriaDto entrada e saída de Categoria.
type CategoriaDto struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao"`
	Ativo        bool      `json:"ativo"`
	DataCadastro time.Time `json:"dataCadastro"`
}
