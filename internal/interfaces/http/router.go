package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/catalog"
	"github.com/projeto2025/vendas-api/internal/application/customer"
	"github.com/projeto2025/vendas-api/internal/application/sales"
	"github.com/projeto2025/vendas-api/internal/application/usecase"
	"github.com/projeto2025/vendas-api/internal/domain/entity"
	"github.com/projeto2025/vendas-api/pkg/jwt"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CategoriaUC *catalog.CategoriaUseCase
	ProdutoUC   *catalog.ProdutoUseCase
	ClienteUC   *customer.ClienteUseCase
	VendaUC     *sales.VendaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	AuthUC      *auth.AuthUseCase
	JWTConfig   jwt.Config
}

// Router registra as rotas da API. Leituras exigem token; mutações de
// catálogo, clientes e ciclo de vida de venda exigem Admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	admin := RequireRole(entity.RoleAdmin)

	// Segurança (login e refresh públicos; revoke e logout autenticados)
	seguranca := api.Group("/seguranca")
	segurancaHandler := NewSegurancaHandler(deps.AuthUC)
	seguranca.Post("/login", segurancaHandler.Login)
	seguranca.Post("/refresh-token", segurancaHandler.Refresh)
	seguranca.Post("/revoke-token", AuthMiddleware(deps.JWTConfig), segurancaHandler.Revoke)
	seguranca.Post("/logout", AuthMiddleware(deps.JWTConfig), segurancaHandler.Logout)

	// Admin (bootstrap público; demais rotas restritas)
	adminGroup := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.UsuarioUC)
	adminGroup.Post("/create-admin", adminHandler.CreateAdmin)
	adminGroup.Get("/stats", AuthMiddleware(deps.JWTConfig), admin, adminHandler.Stats)
	adminGroup.Put("/:id/reset-password", AuthMiddleware(deps.JWTConfig), admin, adminHandler.ResetPassword)

	// Rotas protegidas (exigem Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTConfig))

	// Categorias
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.GetAll)
	categorias.Get("/:id", categoriaHandler.Get)
	categorias.Post("/", admin, categoriaHandler.Create)
	categorias.Put("/", admin, categoriaHandler.Update)
	categorias.Delete("/:id", admin, categoriaHandler.Delete)

	// Produtos (rotas fixas antes de /:id)
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.GetAll)
	produtos.Get("/estoque", produtoHandler.GetEmEstoque)
	produtos.Get("/categoria/:id", produtoHandler.GetByCategoria)
	produtos.Get("/marca/:marca", produtoHandler.GetByMarca)
	produtos.Get("/buscar/:termo", produtoHandler.Buscar)
	produtos.Get("/:id", produtoHandler.Get)
	produtos.Post("/", admin, produtoHandler.Create)
	produtos.Put("/estoque/:id", admin, produtoHandler.AjustarEstoque)
	produtos.Put("/", admin, produtoHandler.Update)
	produtos.Delete("/:id", admin, produtoHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.GetAll)
	clientes.Get("/buscar/:nome", clienteHandler.GetByNome)
	clientes.Get("/email/:email", clienteHandler.GetByEmail)
	clientes.Get("/:id", clienteHandler.Get)
	clientes.Post("/", admin, clienteHandler.Create)
	clientes.Put("/", admin, clienteHandler.Update)
	clientes.Delete("/:id", admin, clienteHandler.Delete)

	// Vendas
	vendas := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendas.Post("/", vendaHandler.Create)
	vendas.Get("/", vendaHandler.GetAll)
	vendas.Get("/periodo", vendaHandler.GetByPeriodo)
	vendas.Get("/cliente/:id", vendaHandler.GetByCliente)
	vendas.Get("/:id/itens", vendaHandler.GetComItens)
	vendas.Get("/:id/comprovante", vendaHandler.Comprovante)
	vendas.Get("/:id", vendaHandler.Get)
	vendas.Put("/:id/finalizar", admin, vendaHandler.Finalizar)
	vendas.Put("/:id/cancelar", admin, vendaHandler.Cancelar)
	vendas.Put("/", admin, vendaHandler.Update)
	vendas.Delete("/:id", admin, vendaHandler.Delete)

	// Usuários
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.AuthUC)
	usuarios.Get("/", admin, usuarioHandler.GetAll)
	usuarios.Get("/username/:username", usuarioHandler.GetByUserName)
	usuarios.Get("/:id", usuarioHandler.Get)
	usuarios.Post("/", admin, usuarioHandler.Create)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", admin, usuarioHandler.Delete)
	usuarios.Post("/:id/change-password", usuarioHandler.ChangePassword)
}
