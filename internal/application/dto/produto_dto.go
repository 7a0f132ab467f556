package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProdutoDto entrada e saída de Produto. NomeCategoria é denormalizado nas
// leituras; o serviço o preenche a partir da categoria.
type ProdutoDto struct {
	ID                int64           `json:"id"`
	Nome              string          `json:"nome"`
	Descricao         string          `json:"descricao"`
	Marca             string          `json:"marca"`
	Modelo            string          `json:"modelo"`
	Preco             decimal.Decimal `json:"preco"`
	QuantidadeEstoque int             `json:"quantidadeEstoque"`
	Especificacoes    string          `json:"especificacoes"`
	ImagemURL         string          `json:"imagemUrl"`
	Ativo             bool            `json:"ativo"`
	DataCadastro      time.Time       `json:"dataCadastro"`
	IDCategoria       int64           `json:"idCategoria"`
	NomeCategoria     string          `json:"nomeCategoria"`
}

// AjusteEstoqueRequest corpo de PUT /api/produtos/estoque/{id}: delta com
// sinal (negativo debita, positivo credita).
type AjusteEstoqueRequest struct {
	Quantidade int `json:"quantidade"`
}
