package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendaDto entrada e saída de Venda. Na criação o chamador envia IDCliente,
// FormaPagamento, Observacoes e ItensVenda; DataVenda, ValorTotal e Status são
// atribuídos pelo servidor. NomeCliente é denormalizado: copiado do cliente
// quando carregado, senão preenchido pelo serviço via consulta.
type VendaDto struct {
	ID             int64           `json:"id"`
	IDCliente      int64           `json:"idCliente"`
	NomeCliente    string          `json:"nomeCliente"`
	DataVenda      time.Time       `json:"dataVenda"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	Desconto       decimal.Decimal `json:"desconto"`
	Status         string          `json:"status"`
	FormaPagamento string          `json:"formaPagamento"`
	Observacoes    string          `json:"observacoes"`
	ItensVenda     []ItemVendaDto  `json:"itensVenda"`
}

// ItemVendaDto linha da venda. Subtotal deve chegar igual a
// Quantidade × PrecoUnitario − Desconto; o serviço rejeita divergências.
type ItemVendaDto struct {
	ID            int64           `json:"id"`
	IDVenda       int64           `json:"idVenda"`
	IDProduto     int64           `json:"idProduto"`
	NomeProduto   string          `json:"nomeProduto"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}
