package entity

import "github.com/shopspring/decimal"

// ItemVenda é uma linha da venda. PrecoUnitario é o preço congelado no momento
// da venda, não o preço vivo do produto. Subtotal é gravado na escrita e deve
// valer Quantidade × PrecoUnitario − Desconto.
type ItemVenda struct {
	ID            int64
	IDVenda       int64
	IDProduto     int64
	Quantidade    int
	PrecoUnitario decimal.Decimal
	Desconto      decimal.Decimal
	Subtotal      decimal.Decimal
}

// SubtotalCalculado devolve Quantidade × PrecoUnitario − Desconto.
func (i ItemVenda) SubtotalCalculado() decimal.Decimal {
	return i.PrecoUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade))).Sub(i.Desconto)
}
