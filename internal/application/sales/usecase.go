package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// VendaUseCase orquestra o ciclo de vida da venda: criação com débito de
// estoque, finalização, cancelamento com devolução e consultas. Criação e
// cancelamento rodam inteiros dentro de uma transação.
type VendaUseCase struct {
	txRunner    TxRunner
	vendaRepo   repository.VendaRepository
	itemRepo    repository.ItemVendaRepository
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
	pdfGen      ComprovantePDFGenerator
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(
	txRunner TxRunner,
	vendaRepo repository.VendaRepository,
	itemRepo repository.ItemVendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	pdfGen ComprovantePDFGenerator,
) *VendaUseCase {
	return &VendaUseCase{
		txRunner:    txRunner,
		vendaRepo:   vendaRepo,
		itemRepo:    itemRepo,
		produtoRepo: produtoRepo,
		clienteRepo: clienteRepo,
		pdfGen:      pdfGen,
	}
}

// Create cria a venda: valida cliente, produtos e a identidade de subtotal de
// cada item, e então, em uma única transação, grava cabeça e itens e debita o
// estoque de cada produto. Qualquer débito que deixaria o estoque negativo
// aborta tudo com ErrInsufficientStock. Status inicial é sempre Pendente e a
// data é a do servidor; valores enviados nesses campos são ignorados.
func (uc *VendaUseCase) Create(ctx context.Context, in dto.VendaDto) (*dto.VendaDto, error) {
	if in.IDCliente <= 0 || len(in.ItensVenda) == 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.Get(in.IDCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.Desconto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Validação dos itens e resolução dos produtos fora da transação (só
	// leitura). O nome do produto é congelado aqui para a resposta.
	nomesProduto := make(map[int64]string, len(in.ItensVenda))
	itens := make([]*entity.ItemVenda, 0, len(in.ItensVenda))
	total := decimal.Zero
	for _, itemDto := range in.ItensVenda {
		if itemDto.IDProduto <= 0 || itemDto.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if itemDto.PrecoUnitario.LessThanOrEqual(decimal.Zero) || itemDto.Desconto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		produto, err := uc.produtoRepo.Get(itemDto.IDProduto)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, domain.ErrNotFound
		}
		nomesProduto[produto.ID] = produto.Nome

		item := &entity.ItemVenda{
			IDProduto:     itemDto.IDProduto,
			Quantidade:    itemDto.Quantidade,
			PrecoUnitario: itemDto.PrecoUnitario,
			Desconto:      itemDto.Desconto,
			Subtotal:      itemDto.Subtotal,
		}
		if !item.Subtotal.Equal(item.SubtotalCalculado()) {
			return nil, fmt.Errorf("%w: subtotal do produto %d não confere",
				domain.ErrInvalidInput, item.IDProduto)
		}
		total = total.Add(item.Subtotal)
		itens = append(itens, item)
	}

	venda := &entity.Venda{
		IDCliente:      in.IDCliente,
		DataVenda:      time.Now(),
		ValorTotal:     total,
		Desconto:       in.Desconto,
		Status:         entity.StatusPendente,
		FormaPagamento: in.FormaPagamento,
		Observacoes:    in.Observacoes,
	}

	err = uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		itemRepo repository.ItemVendaRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		if err := vendaRepo.Add(venda); err != nil {
			return err
		}
		for _, item := range itens {
			item.IDVenda = venda.ID
			if err := itemRepo.Add(item); err != nil {
				return err
			}
			ok, err := produtoRepo.AjustarEstoque(item.IDProduto, -item.Quantidade)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: produto %d", domain.ErrInsufficientStock, item.IDProduto)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toVendaDto(venda, cliente.Nome, itens, nomesProduto)
	return out, nil
}

// Get obtém a venda por ID, sem itens. NomeCliente é resolvido por consulta.
func (uc *VendaUseCase) Get(id int64) (*dto.VendaDto, error) {
	venda, err := uc.vendaRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	return toVendaDto(venda, uc.nomeCliente(venda.IDCliente), nil, nil), nil
}

// GetComItens obtém a venda com os itens, incluindo o nome de cada produto.
func (uc *VendaUseCase) GetComItens(id int64) (*dto.VendaDto, error) {
	venda, itens, err := uc.vendaRepo.GetComItens(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	return toVendaDto(venda, uc.nomeCliente(venda.IDCliente), itens, uc.nomesProduto(itens)), nil
}

// GetAll lista todas as vendas, sem itens.
func (uc *VendaUseCase) GetAll() ([]*dto.VendaDto, error) {
	vendas, err := uc.vendaRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return uc.toDtos(vendas), nil
}

// GetByCliente lista as vendas do cliente. Cliente inexistente é ErrNotFound.
func (uc *VendaUseCase) GetByCliente(idCliente int64) ([]*dto.VendaDto, error) {
	cliente, err := uc.clienteRepo.Get(idCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	vendas, err := uc.vendaRepo.GetByCliente(idCliente)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendaDto, 0, len(vendas))
	for _, v := range vendas {
		out = append(out, toVendaDto(v, cliente.Nome, nil, nil))
	}
	return out, nil
}

// GetByPeriodo lista vendas no intervalo fechado [inicio, fim].
func (uc *VendaUseCase) GetByPeriodo(inicio, fim time.Time) ([]*dto.VendaDto, error) {
	if fim.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	vendas, err := uc.vendaRepo.GetByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	return uc.toDtos(vendas), nil
}

// Finalizar marca a venda como Finalizada. Estoque não é tocado.
func (uc *VendaUseCase) Finalizar(id int64) (*dto.VendaDto, error) {
	venda, err := uc.vendaRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	venda.Status = entity.StatusFinalizada
	if err := uc.vendaRepo.Update(venda); err != nil {
		return nil, err
	}
	return toVendaDto(venda, uc.nomeCliente(venda.IDCliente), nil, nil), nil
}

// Cancelar marca a venda como Cancelada e devolve ao estoque a quantidade de
// cada item, tudo em uma transação. Não há trava contra cancelamento repetido:
// cancelar duas vezes devolve o estoque duas vezes.
func (uc *VendaUseCase) Cancelar(ctx context.Context, id int64) (*dto.VendaDto, error) {
	venda, err := uc.vendaRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		itemRepo repository.ItemVendaRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		itens, err := itemRepo.GetByVenda(id)
		if err != nil {
			return err
		}
		for _, item := range itens {
			if _, err := produtoRepo.AjustarEstoque(item.IDProduto, item.Quantidade); err != nil {
				return err
			}
		}
		venda.Status = entity.StatusCancelada
		return vendaRepo.Update(venda)
	})
	if err != nil {
		return nil, err
	}
	return toVendaDto(venda, uc.nomeCliente(venda.IDCliente), nil, nil), nil
}

// Update substitui os campos mutáveis da venda: status, forma de pagamento,
// desconto, observações e cliente. Não recalcula total nem mexe em estoque ou
// itens.
func (uc *VendaUseCase) Update(in dto.VendaDto) (*dto.VendaDto, error) {
	if in.ID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	venda, err := uc.vendaRepo.Get(in.ID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" {
		if !entity.StatusValido(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		venda.Status = in.Status
	}
	if in.IDCliente > 0 && in.IDCliente != venda.IDCliente {
		cliente, err := uc.clienteRepo.Get(in.IDCliente)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
		venda.IDCliente = in.IDCliente
	}
	if in.Desconto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	venda.Desconto = in.Desconto
	venda.FormaPagamento = in.FormaPagamento
	venda.Observacoes = in.Observacoes

	if err := uc.vendaRepo.Update(venda); err != nil {
		return nil, err
	}
	return toVendaDto(venda, uc.nomeCliente(venda.IDCliente), nil, nil), nil
}

// Remove exclui a venda e seus itens. O estoque NÃO é devolvido; para devolver
// estoque a venda deve ser cancelada antes.
func (uc *VendaUseCase) Remove(id int64) error {
	venda, err := uc.vendaRepo.Get(id)
	if err != nil {
		return err
	}
	if venda == nil {
		return domain.ErrNotFound
	}
	return uc.vendaRepo.Remove(id)
}

// Comprovante gera o PDF do comprovante da venda. Devolve os bytes e o nome
// sugerido do arquivo.
func (uc *VendaUseCase) Comprovante(ctx context.Context, id int64) ([]byte, string, error) {
	venda, itens, err := uc.vendaRepo.GetComItens(id)
	if err != nil {
		return nil, "", err
	}
	if venda == nil {
		return nil, "", domain.ErrNotFound
	}
	nomes := uc.nomesProduto(itens)
	data := &ComprovanteData{
		IDVenda:        venda.ID,
		NomeCliente:    uc.nomeCliente(venda.IDCliente),
		DataVenda:      venda.DataVenda.Format("02/01/2006 15:04"),
		Status:         venda.Status,
		FormaPagamento: venda.FormaPagamento,
		Observacoes:    venda.Observacoes,
		Desconto:       venda.Desconto,
		ValorTotal:     venda.ValorTotal,
	}
	for _, item := range itens {
		data.Itens = append(data.Itens, ComprovanteItem{
			NomeProduto:   nomes[item.IDProduto],
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Desconto:      item.Desconto,
			Subtotal:      item.Subtotal,
		})
	}
	pdfBytes, err := uc.pdfGen.Generate(data)
	if err != nil {
		return nil, "", fmt.Errorf("gerar comprovante: %w", err)
	}
	return pdfBytes, fmt.Sprintf("comprovante-venda-%d.pdf", venda.ID), nil
}

// nomeCliente resolve o nome do cliente; vazio quando não encontrado.
func (uc *VendaUseCase) nomeCliente(idCliente int64) string {
	cliente, err := uc.clienteRepo.Get(idCliente)
	if err != nil || cliente == nil {
		return ""
	}
	return cliente.Nome
}

// nomesProduto mapeia id -> nome para os produtos dos itens.
func (uc *VendaUseCase) nomesProduto(itens []*entity.ItemVenda) map[int64]string {
	nomes := make(map[int64]string, len(itens))
	for _, item := range itens {
		if _, ok := nomes[item.IDProduto]; ok {
			continue
		}
		produto, err := uc.produtoRepo.Get(item.IDProduto)
		if err == nil && produto != nil {
			nomes[item.IDProduto] = produto.Nome
		}
	}
	return nomes
}

func (uc *VendaUseCase) toDtos(vendas []*entity.Venda) []*dto.VendaDto {
	out := make([]*dto.VendaDto, 0, len(vendas))
	nomes := make(map[int64]string)
	for _, v := range vendas {
		nome, ok := nomes[v.IDCliente]
		if !ok {
			nome = uc.nomeCliente(v.IDCliente)
			nomes[v.IDCliente] = nome
		}
		out = append(out, toVendaDto(v, nome, nil, nil))
	}
	return out
}

func toVendaDto(v *entity.Venda, nomeCliente string, itens []*entity.ItemVenda, nomesProduto map[int64]string) *dto.VendaDto {
	out := &dto.VendaDto{
		ID:             v.ID,
		IDCliente:      v.IDCliente,
		NomeCliente:    nomeCliente,
		DataVenda:      v.DataVenda,
		ValorTotal:     v.ValorTotal,
		Desconto:       v.Desconto,
		Status:         v.Status,
		FormaPagamento: v.FormaPagamento,
		Observacoes:    v.Observacoes,
	}
	for _, item := range itens {
		out.ItensVenda = append(out.ItensVenda, dto.ItemVendaDto{
			ID:            item.ID,
			IDVenda:       item.IDVenda,
			IDProduto:     item.IDProduto,
			NomeProduto:   nomesProduto[item.IDProduto],
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Desconto:      item.Desconto,
			Subtotal:      item.Subtotal,
		})
	}
	return out
}
