// Package pdf gera o comprovante de venda em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprovante de Venda + nº  │  Data + Status         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nome + forma de pagamento                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Produto | Preço Unit. | Desc. | Subtotal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Desconto / TOTAL                                    │
//	│  RODAPÉ: observações                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/projeto2025/vendas-api/internal/application/sales"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoComprovanteGenerator implementa sales.ComprovantePDFGenerator com
// Maroto v2.
type MarotoComprovanteGenerator struct{}

// NewMarotoComprovanteGenerator constrói o gerador.
func NewMarotoComprovanteGenerator() *MarotoComprovanteGenerator {
	return &MarotoComprovanteGenerator{}
}

// Generate gera o PDF do comprovante e devolve seus bytes.
func (g *MarotoComprovanteGenerator) Generate(data *sales.ComprovanteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprovante de Venda Nº %d", data.IDVenda), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(data))

	if data.Observacoes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(observacoesRow(data.Observacoes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + número da venda (esq) e data + status (dir).
func headerRow(data *sales.ComprovanteData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROVANTE DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Venda Nº %d", data.IDVenda), props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Data: "+data.DataVenda, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Status: "+data.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

// clienteRow: nome do cliente e forma de pagamento.
func clienteRow(data *sales.ComprovanteData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.NomeCliente, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Forma de pagamento: "+nonEmpty(data.FormaPagamento, "—"),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 5, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Desconto", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: uma linha por item da venda.
func tableItemRows(itens []sales.ComprovanteItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				item.NomeProduto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+item.PrecoUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+item.Desconto.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+item.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: bloco de totais alinhado à direita.
func totaisRow(data *sales.ComprovanteData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 7,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 7,
		})
	}
	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Desconto da venda:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value("R$ "+data.Desconto.StringFixed(2)),
			grandValue("R$ "+data.ValorTotal.StringFixed(2)),
		),
	)
}

// observacoesRow: observações livres da venda.
func observacoesRow(obs string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Observações: "+obs, props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
