package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comerciotech/internal/config"
	"comerciotech/internal/database"
	"comerciotech/internal/handlers"
	"comerciotech/internal/middleware"
	"comerciotech/internal/service"
)

// New returns the configured gin engine. Routes come from a single table
// that also feeds the documentation page and /debug.
func New(cfg *config.Config, svc *service.Service, pinger database.Pinger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.SetHTMLTemplate(handlers.Templates())

	sections := Sections(svc)
	utilities := handlers.Section{
		Key:   "utilidades",
		Title: "🔧 Utilidades",
		Endpoints: []handlers.Endpoint{
			{Method: http.MethodGet, Path: "/debug", Summary: "Información de debug y estadísticas", Handler: handlers.Debug(svc, cfg.DBName, sections)},
			{Method: http.MethodGet, Path: "/health", Summary: "Estado de la base de datos", Handler: handlers.Health(pinger)},
		},
	}
	sections = append(sections, utilities)

	for _, section := range sections {
		for _, e := range section.Endpoints {
			r.Handle(e.Method, e.Path, e.Handler)
		}
	}

	r.GET("/", handlers.Home(handlers.HomePage{
		Database: cfg.DBName,
		Port:     cfg.Port,
		Sections: sections,
	}))

	return r
}

// Sections is the CRUD route table.
func Sections(svc *service.Service) []handlers.Section {
	return []handlers.Section{
		{
			Key:   "clientes",
			Title: "👥 Clientes",
			Endpoints: []handlers.Endpoint{
				{Method: http.MethodGet, Path: "/clientes", Summary: "Obtener todos los clientes", Handler: handlers.ListCustomers(svc)},
				{Method: http.MethodPost, Path: "/clientes", Summary: "Crear nuevo cliente", Handler: handlers.CreateCustomer(svc)},
				{Method: http.MethodGet, Path: "/clientes/:id", Summary: "Obtener cliente por ID", Handler: handlers.GetCustomer(svc)},
				{Method: http.MethodPut, Path: "/clientes/:id", Summary: "Actualizar cliente", Handler: handlers.UpdateCustomer(svc)},
				{Method: http.MethodDelete, Path: "/clientes/:id", Summary: "Eliminar cliente", Handler: handlers.DeleteCustomer(svc)},
			},
		},
		{
			Key:   "productos",
			Title: "📦 Productos",
			Endpoints: []handlers.Endpoint{
				{Method: http.MethodGet, Path: "/productos", Summary: "Obtener todos los productos", Handler: handlers.ListProducts(svc)},
				{Method: http.MethodPost, Path: "/productos", Summary: "Crear nuevo producto", Handler: handlers.CreateProduct(svc)},
				{Method: http.MethodGet, Path: "/productos/:id", Summary: "Obtener producto por ID", Handler: handlers.GetProduct(svc)},
				{Method: http.MethodPut, Path: "/productos/:id", Summary: "Actualizar producto", Handler: handlers.UpdateProduct(svc)},
				{Method: http.MethodDelete, Path: "/productos/:id", Summary: "Eliminar producto", Handler: handlers.DeleteProduct(svc)},
			},
		},
		{
			Key:   "pedidos",
			Title: "🛒 Pedidos",
			Endpoints: []handlers.Endpoint{
				{Method: http.MethodGet, Path: "/pedidos", Summary: "Obtener todos los pedidos", Handler: handlers.ListOrders(svc)},
				{Method: http.MethodPost, Path: "/pedidos", Summary: "Crear nuevo pedido", Handler: handlers.CreateOrder(svc)},
				{Method: http.MethodGet, Path: "/pedidos/:id", Summary: "Obtener pedido por ID", Handler: handlers.GetOrder(svc)},
				{Method: http.MethodPut, Path: "/pedidos/:id", Summary: "Actualizar pedido", Handler: handlers.UpdateOrder(svc)},
				{Method: http.MethodDelete, Path: "/pedidos/:id", Summary: "Eliminar pedido", Handler: handlers.DeleteOrder(svc)},
			},
		},
	}
}
