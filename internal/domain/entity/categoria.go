package entity

import "time"

// Categoria agrupa produtos. O vínculo parte de Produto via IDCategoria;
// a categoria não carrega a lista de produtos em memória.
type Categoria struct {
	ID           int64
	Nome         string
	Descricao    string
	Ativo        bool
	DataCadastro time.Time
}
