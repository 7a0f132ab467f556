package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos de uma Venda. Criação sempre em Pendente; Finalizada via
// finalizar, Cancelada via cancelar (com devolução de estoque). Confirmada é
// um valor legal mas nenhuma operação de orquestração o atribui — só chega lá
// por update direto.
const (
	StatusPendente   = "Pendente"
	StatusConfirmada = "Confirmada"
	StatusCancelada  = "Cancelada"
	StatusFinalizada = "Finalizada"
)

// StatusValido informa se s é um status de venda reconhecido.
func StatusValido(s string) bool {
	switch s {
	case StatusPendente, StatusConfirmada, StatusCancelada, StatusFinalizada:
		return true
	}
	return false
}

// Venda é a cabeça da venda. ValorTotal é a soma dos subtotais dos itens no
// momento da criação; não é recalculado quando a venda é alterada depois.
type Venda struct {
	ID             int64
	IDCliente      int64
	DataVenda      time.Time
	ValorTotal     decimal.Decimal
	Desconto       decimal.Decimal
	Status         string
	FormaPagamento string // Dinheiro, Cartão, PIX, etc.
	Observacoes    string
}
