package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo. QuantidadeEstoque nunca fica
// negativa: toda alteração passa pelo ajuste condicional do repositório.
type Produto struct {
	ID                int64
	Nome              string
	Descricao         string
	Marca             string
	Modelo            string
	Preco             decimal.Decimal // preço de venda, 2 casas decimais
	QuantidadeEstoque int
	Especificacoes    string
	ImagemURL         string
	Ativo             bool
	DataCadastro      time.Time
	IDCategoria       int64
}
