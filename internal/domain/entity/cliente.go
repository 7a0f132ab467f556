package entity

import "time"

// Cliente representa um cliente da loja.
type Cliente struct {
	ID             int64
	Nome           string
	Email          string
	Telefone       string
	Cpf            string
	DataNascimento time.Time
	Endereco       string
	Cidade         string
	Estado         string
	Cep            string
	Ativo          bool
	DataCadastro   time.Time
}
