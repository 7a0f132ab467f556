package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/projeto2025/vendas-api/internal/application/dto"
	"github.com/projeto2025/vendas-api/internal/domain"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/internal/domain/repository"
)

// ClienteUseCase CRUD e buscas de clientes. A exclusão é travada enquanto o
// cliente possuir vendas.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
	vendaRepo   repository.VendaRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository, vendaRepo repository.VendaRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo, vendaRepo: vendaRepo}
}

// Add cria um cliente. DataCadastro é do servidor; CPF duplicado vira
// ErrDuplicate no repositório.
func (uc *ClienteUseCase) Add(in dto.ClienteDto) (*dto.ClienteDto, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente := &entity.Cliente{
		Nome:           in.Nome,
		Email:          in.Email,
		Telefone:       in.Telefone,
		Cpf:            in.Cpf,
		DataNascimento: in.DataNascimento,
		Endereco:       in.Endereco,
		Cidade:         in.Cidade,
		Estado:         in.Estado,
		Cep:            in.Cep,
		Ativo:          in.Ativo,
		DataCadastro:   time.Now(),
	}
	if err := uc.clienteRepo.Add(cliente); err != nil {
		return nil, err
	}
	return toClienteDto(cliente), nil
}

// Get obtém cliente por ID; ErrNotFound quando não existe.
func (uc *ClienteUseCase) Get(id int64) (*dto.ClienteDto, error) {
	cliente, err := uc.clienteRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteDto(cliente), nil
}

// GetAll lista todos os clientes.
func (uc *ClienteUseCase) GetAll() ([]*dto.ClienteDto, error) {
	clientes, err := uc.clienteRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return toClienteDtos(clientes), nil
}

// GetByNome lista clientes cujo nome contém o termo.
func (uc *ClienteUseCase) GetByNome(nome string) ([]*dto.ClienteDto, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	clientes, err := uc.clienteRepo.GetByNome(nome)
	if err != nil {
		return nil, err
	}
	return toClienteDtos(clientes), nil
}

// GetByEmail lista clientes com o email informado.
func (uc *ClienteUseCase) GetByEmail(email string) ([]*dto.ClienteDto, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrInvalidInput
	}
	clientes, err := uc.clienteRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return toClienteDtos(clientes), nil
}

// Update atualiza o cliente. DataCadastro original é preservada.
func (uc *ClienteUseCase) Update(in dto.ClienteDto) (*dto.ClienteDto, error) {
	if in.ID <= 0 || strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.Get(in.ID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cliente.Nome = in.Nome
	cliente.Email = in.Email
	cliente.Telefone = in.Telefone
	cliente.Cpf = in.Cpf
	cliente.DataNascimento = in.DataNascimento
	cliente.Endereco = in.Endereco
	cliente.Cidade = in.Cidade
	cliente.Estado = in.Estado
	cliente.Cep = in.Cep
	cliente.Ativo = in.Ativo
	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteDto(cliente), nil
}

// Remove exclui o cliente. ErrConflict enquanto o cliente possuir vendas.
func (uc *ClienteUseCase) Remove(id int64) error {
	cliente, err := uc.clienteRepo.Get(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	n, err := uc.vendaRepo.CountByCliente(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: cliente possui %d venda(s)", domain.ErrConflict, n)
	}
	return uc.clienteRepo.Remove(id)
}

func toClienteDto(c *entity.Cliente) *dto.ClienteDto {
	return &dto.ClienteDto{
		ID:             c.ID,
		Nome:           c.Nome,
		Email:          c.Email,
		Telefone:       c.Telefone,
		Cpf:            c.Cpf,
		DataNascimento: c.DataNascimento,
		Endereco:       c.Endereco,
		Cidade:         c.Cidade,
		Estado:         c.Estado,
		Cep:            c.Cep,
		Ativo:          c.Ativo,
		DataCadastro:   c.DataCadastro,
	}
}

func toClienteDtos(clientes []*entity.Cliente) []*dto.ClienteDto {
	out := make([]*dto.ClienteDto, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteDto(c))
	}
	return out
}
