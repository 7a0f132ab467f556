package sales_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/sales"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

// memStore estado em memória compartilhado pelos repositórios fake. É o
// análogo do banco: o txRunner fake tira snapshot dele para simular rollback.
type memStore struct {
	produtos map[int64]*entity.Produto
	clientes map[int64]*entity.Cliente
	vendas   map[int64]*entity.Venda
	itens    map[int64]*entity.ItemVenda
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		produtos: make(map[int64]*entity.Produto),
		clientes: make(map[int64]*entity.Cliente),
		vendas:   make(map[int64]*entity.Venda),
		itens:    make(map[int64]*entity.ItemVenda),
		nextID:   1,
	}
}

func (s *memStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextID = s.nextID
	for k, v := range s.produtos {
		c := *v
		cp.produtos[k] = &c
	}
	for k, v := range s.clientes {
		c := *v
		cp.clientes[k] = &c
	}
	for k, v := range s.vendas {
		c := *v
		cp.vendas[k] = &c
	}
	for k, v := range s.itens {
		c := *v
		cp.itens[k] = &c
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.produtos = snap.produtos
	s.clientes = snap.clientes
	s.vendas = snap.vendas
	s.itens = snap.itens
	s.nextID = snap.nextID
}

// ── ProdutoRepository ─────────────────────────────────────────────────────────

type fakeProdutoRepo struct{ s *memStore }

func (f *fakeProdutoRepo) Add(p *entity.Produto) error {
	p.ID = f.s.id()
	cp := *p
	f.s.produtos[p.ID] = &cp
	return nil
}

func (f *fakeProdutoRepo) Get(id int64) (*entity.Produto, error) {
	p, ok := f.s.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProdutoRepo) GetAll() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(f.s.produtos))
	for _, p := range f.s.produtos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProdutoRepo) Update(p *entity.Produto) error {
	cp := *p
	f.s.produtos[p.ID] = &cp
	return nil
}

func (f *fakeProdutoRepo) Remove(id int64) error {
	delete(f.s.produtos, id)
	return nil
}

func (f *fakeProdutoRepo) GetByCategoria(idCategoria int64) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.s.produtos {
		if p.IDCategoria == idCategoria && p.Ativo {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) GetByMarca(marca string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.s.produtos {
		if strings.Contains(strings.ToLower(p.Marca), strings.ToLower(marca)) && p.Ativo {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) GetEmEstoque() ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.s.produtos {
		if p.QuantidadeEstoque > 0 && p.Ativo {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) Buscar(termo string) ([]*entity.Produto, error) {
	termo = strings.ToLower(termo)
	var out []*entity.Produto
	for _, p := range f.s.produtos {
		alvo := strings.ToLower(p.Nome + " " + p.Descricao + " " + p.Marca + " " + p.Modelo)
		if strings.Contains(alvo, termo) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) CountByCategoria(idCategoria int64) (int64, error) {
	var n int64
	for _, p := range f.s.produtos {
		if p.IDCategoria == idCategoria {
			n++
		}
	}
	return n, nil
}

// AjustarEstoque reproduz o UPDATE condicional: só escreve se o resultado
// for >= 0.
func (f *fakeProdutoRepo) AjustarEstoque(id int64, delta int) (bool, error) {
	p, ok := f.s.produtos[id]
	if !ok || p.QuantidadeEstoque+delta < 0 {
		return false, nil
	}
	p.QuantidadeEstoque += delta
	return true, nil
}

// ── ClienteRepository ─────────────────────────────────────────────────────────

type fakeClienteRepo struct{ s *memStore }

func (f *fakeClienteRepo) Add(c *entity.Cliente) error {
	for _, existing := range f.s.clientes {
		if existing.Cpf != "" && existing.Cpf == c.Cpf {
			return domain.ErrDuplicate
		}
	}
	c.ID = f.s.id()
	cp := *c
	f.s.clientes[c.ID] = &cp
	return nil
}

func (f *fakeClienteRepo) Get(id int64) (*entity.Cliente, error) {
	c, ok := f.s.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClienteRepo) GetAll() ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.s.clientes))
	for _, c := range f.s.clientes {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	cp := *c
	f.s.clientes[c.ID] = &cp
	return nil
}

func (f *fakeClienteRepo) Remove(id int64) error {
	delete(f.s.clientes, id)
	return nil
}

func (f *fakeClienteRepo) GetByNome(nome string) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.s.clientes {
		if strings.Contains(strings.ToLower(c.Nome), strings.ToLower(nome)) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeClienteRepo) GetByEmail(email string) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.s.clientes {
		if strings.EqualFold(c.Email, email) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── VendaRepository / ItemVendaRepository ─────────────────────────────────────

type fakeVendaRepo struct{ s *memStore }

func (f *fakeVendaRepo) Add(v *entity.Venda) error {
	v.ID = f.s.id()
	cp := *v
	f.s.vendas[v.ID] = &cp
	return nil
}

func (f *fakeVendaRepo) Get(id int64) (*entity.Venda, error) {
	v, ok := f.s.vendas[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVendaRepo) GetComItens(id int64) (*entity.Venda, []*entity.ItemVenda, error) {
	v, err := f.Get(id)
	if err != nil || v == nil {
		return nil, nil, err
	}
	itens, _ := (&fakeItemVendaRepo{s: f.s}).GetByVenda(id)
	return v, itens, nil
}

func (f *fakeVendaRepo) GetAll() ([]*entity.Venda, error) {
	out := make([]*entity.Venda, 0, len(f.s.vendas))
	for _, v := range f.s.vendas {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataVenda.After(out[j].DataVenda) })
	return out, nil
}

func (f *fakeVendaRepo) GetByCliente(idCliente int64) ([]*entity.Venda, error) {
	var out []*entity.Venda
	for _, v := range f.s.vendas {
		if v.IDCliente == idCliente {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeVendaRepo) GetByPeriodo(inicio, fim time.Time) ([]*entity.Venda, error) {
	var out []*entity.Venda
	for _, v := range f.s.vendas {
		if !v.DataVenda.Before(inicio) && !v.DataVenda.After(fim) {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeVendaRepo) Update(v *entity.Venda) error {
	cp := *v
	f.s.vendas[v.ID] = &cp
	return nil
}

// Remove exclui a venda e os itens em cascata, como a FK faria.
func (f *fakeVendaRepo) Remove(id int64) error {
	delete(f.s.vendas, id)
	for itemID, item := range f.s.itens {
		if item.IDVenda == id {
			delete(f.s.itens, itemID)
		}
	}
	return nil
}

func (f *fakeVendaRepo) CountByCliente(idCliente int64) (int64, error) {
	var n int64
	for _, v := range f.s.vendas {
		if v.IDCliente == idCliente {
			n++
		}
	}
	return n, nil
}

type fakeItemVendaRepo struct{ s *memStore }

func (f *fakeItemVendaRepo) Add(i *entity.ItemVenda) error {
	i.ID = f.s.id()
	cp := *i
	f.s.itens[i.ID] = &cp
	return nil
}

func (f *fakeItemVendaRepo) GetByVenda(idVenda int64) ([]*entity.ItemVenda, error) {
	var out []*entity.ItemVenda
	for _, i := range f.s.itens {
		if i.IDVenda == idVenda {
			cp := *i
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner simula a transação: snapshot antes, restore no erro. Prova que
// a orquestração devolve o estado intacto quando qualquer passo falha.
type fakeTxRunner struct{ s *memStore }

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	vendaRepo repository.VendaRepository,
	itemRepo repository.ItemVendaRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	snap := f.s.snapshot()
	err := fn(&fakeVendaRepo{s: f.s}, &fakeItemVendaRepo{s: f.s}, &fakeProdutoRepo{s: f.s})
	if err != nil {
		f.s.restore(snap)
		return err
	}
	return nil
}

// ── PDF ───────────────────────────────────────────────────────────────────────

// fakePDFGenerator devolve bytes fixos e guarda o último ComprovanteData.
type fakePDFGenerator struct {
	last *sales.ComprovanteData
}

func (f *fakePDFGenerator) Generate(data *sales.ComprovanteData) ([]byte, error) {
	f.last = data
	return []byte("%PDF-fake"), nil
}
