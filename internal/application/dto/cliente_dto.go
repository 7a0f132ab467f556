package dto

import "time"

// ClienteDto entrada e saída de Cliente.
type ClienteDto struct {
	ID             int64     `json:"id"`
	Nome           string    `json:"nome"`
	Email          string    `json:"email"`
	Telefone       string    `json:"telefone"`
	Cpf            string    `json:"cpf"`
	DataNascimento time.Time `json:"dataNascimento"`
	Endereco       string    `json:"endereco"`
	Cidade         string    `json:"cidade"`
	Estado         string    `json:"estado"`
	Cep            string    `json:"cep"`
	Ativo          bool      `json:"ativo"`
	DataCadastro   time.Time `json:"dataCadastro"`
}
