package sales

import (
	"context"

	"github.com/projeto2025/vendas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner executa fn dentro de uma transação. Os repositórios recebidos por
// fn estão atados à mesma transação; erro de fn desfaz tudo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vendaRepo repository.VendaRepository,
		itemRepo repository.ItemVendaRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}

// ComprovanteData dados prontos para a renderização do comprovante da venda.
type ComprovanteData struct {
	IDVenda        int64
	NomeCliente    string
	DataVenda      string
	Status         string
	FormaPagamento string
	Observacoes    string
	Desconto       decimal.Decimal
	ValorTotal     decimal.Decimal
	Itens          []ComprovanteItem
}

// ComprovanteItem linha da tabela de itens do comprovante.
type ComprovanteItem struct {
	NomeProduto   string
	Quantidade    int
	PrecoUnitario decimal.Decimal
	Desconto      decimal.Decimal
	Subtotal      decimal.Decimal
}

// ComprovantePDFGenerator porta de geração do PDF do comprovante.
type ComprovantePDFGenerator interface {
	Generate(data *ComprovanteData) ([]byte, error)
}
