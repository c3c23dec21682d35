package seed

import (
	"time"

	"comerciotech/internal/models"
)

// orderDate is the date every sample order was placed.
var orderDate = time.Date(2025, time.July, 17, 0, 0, 0, 0, time.UTC)

// Customers is the sample customer list.
func Customers() []models.Customer {
	return []models.Customer{
		{ID: oid("68782d020f955f3ff6066610"), Identifier: "C001", FirstName: "Luan", LastName: "Hernández Alarcón",
			Address: &models.Address{Street: "Los Álamos", Number: "45", City: "San pedro de la paz"}, RegisteredAt: "2025-07-01"},
		{ID: oid("68782d020f955f3ff6066611"), Identifier: "C002", FirstName: "Jorge", LastName: "Castillo Altamirano",
			Address: &models.Address{Street: "Las Rosas", Number: "1232", City: "Concepción"}, RegisteredAt: "2025-10-12"},
		{ID: oid("68782d020f955f3ff6066612"), Identifier: "C003", FirstName: "Pablo", LastName: "Villa Alarcón",
			Address: &models.Address{Street: "Colo Colo", Number: "112", City: "Chiguayante"}, RegisteredAt: "2025-12-16"},
		{ID: oid("68782d020f955f3ff6066613"), Identifier: "C004", FirstName: "Luis", LastName: "Martínez Soto",
			Address: &models.Address{Street: "Brasil", Number: "788", City: "Osorno"}, RegisteredAt: "2025-12-15"},
		{ID: oid("68782d020f955f3ff6066614"), Identifier: "C005", FirstName: "Angel", LastName: "Brito Rivas",
			Address: &models.Address{Street: "Maipú", Number: "255", City: "Concepción"}, RegisteredAt: "2025-12-14"},
		{ID: oid("68782d020f955f3ff6066615"), Identifier: "C006", FirstName: "Felipe", LastName: "Suarez Vergara",
			Address: &models.Address{Street: "Manuel Rodríguez", Number: "1022", City: "Valdivia"}, RegisteredAt: "2025-12-13"},
		{ID: oid("68782d020f955f3ff6066616"), Identifier: "C007", FirstName: "Kai", LastName: "Hernández Alarcón",
			Address: &models.Address{Street: "Lautaro", Number: "778", City: "Concepción"}, RegisteredAt: "2025-12-12"},
	}
}

// Products is the sample catalog.
func Products() []models.Product {
	return []models.Product{
		{ID: oid("687854a1519fb2b1e9e63c93"), Name: "MacBook Air M2", Description: "Portátil Apple con chip M2, 8GB RAM, 256GB SSD", Price: 1200000, Stock: 15, Category: "Computadoras"},
		{ID: oid("687854a1519fb2b1e9e63c94"), Name: "Cámara Fotográfica Canon EOS R6", Description: "Cámara mirrorless profesional con sensor full-frame", Price: 1800000, Stock: 8, Category: "Cámaras"},
		{ID: oid("687854a1519fb2b1e9e63c95"), Name: "Cámara Fotográfica Sony Alpha A7 III", Description: "Cámara mirrorless full-frame con excelente desempeño en video", Price: 1750000, Stock: 10, Category: "Cámaras"},
		{ID: oid("687854a1519fb2b1e9e63c96"), Name: "Laptop Asus Intel Core i7", Description: "Laptop Asus con procesador Intel i7, 16GB RAM, 512GB SSD", Price: 900000, Stock: 12, Category: "Computadoras"},
		{ID: oid("687854a1519fb2b1e9e63c97"), Name: "PlayStation 5", Description: "Consola de videojuegos de última generación con SSD ultra rápido", Price: 550000, Stock: 5, Category: "Consolas"},
		{ID: oid("687854a1519fb2b1e9e63c98"), Name: "iPhone 14 Pro", Description: "Smartphone Apple con cámara triple y pantalla Super Retina XDR", Price: 850000, Stock: 20, Category: "Smartphones"},
		{ID: oid("687854a1519fb2b1e9e63c99"), Name: "Samsung Galaxy S22 Ultra", Description: "Smartphone Samsung con cámara de 108MP y S-Pen incorporado", Price: 800000, Stock: 18, Category: "Smartphones"},
		{ID: oid("687854a1519fb2b1e9e63c9a"), Name: "Tablet iPad Pro 12.9\"", Description: "Tablet Apple con chip M1 y pantalla Liquid Retina XDR", Price: 950000, Stock: 10, Category: "Tablets"},
		{ID: oid("687854a1519fb2b1e9e63c9b"), Name: "Apple Watch Series 8", Description: "Smartwatch con monitoreo avanzado de salud y deporte", Price: 300000, Stock: 25, Category: "Wearables"},
		{ID: oid("687854a1519fb2b1e9e63c9c"), Name: "Auriculares Bose QuietComfort 45", Description: "Auriculares inalámbricos con cancelación activa de ruido", Price: 220000, Stock: 30, Category: "Audio"},
		{ID: oid("687854a1519fb2b1e9e63c9d"), Name: "Monitor LG UltraFine 5K", Description: "Monitor de alta resolución para profesionales del diseño", Price: 1300000, Stock: 7, Category: "Monitores"},
		{ID: oid("687854a1519fb2b1e9e63c9e"), Name: "Disco SSD Samsung 1TB", Description: "Disco sólido de alta velocidad para almacenamiento", Price: 120000, Stock: 40, Category: "Almacenamiento"},
		{ID: oid("687854a1519fb2b1e9e63c9f"), Name: "Teclado mecánico Logitech G Pro", Description: "Teclado mecánico para gamers con retroiluminación RGB", Price: 90000, Stock: 50, Category: "Accesorios"},
	}
}

// Orders is the sample order list. Every order references a customer and
// products from Customers and Products.
func Orders() []models.Order {
	return []models.Order{
		{
			ID: oid("68787bd5d7295c52a76dab17"), Code: "P001", CustomerID: oid("68782d020f955f3ff6066610"), OrderedAt: orderDate,
			Items: []models.OrderItem{
				item("687854a1519fb2b1e9e63c93", "MacBook Air M2", 1, 1200000, 1200000),
				item("687854a1519fb2b1e9e63c9c", "Auriculares Bose QuietComfort 45", 2, 220000, 440000),
			},
			Total: 1640000, PaymentMethod: "Tarjeta de crédito",
		},
		{
			ID: oid("68787bd5d7295c52a76dab18"), Code: "P002", CustomerID: oid("68782d020f955f3ff6066611"), OrderedAt: orderDate,
			Items: []models.OrderItem{
				item("687854a1519fb2b1e9e63c9a", "Tablet iPad Pro 12.9\"", 1, 950000, 950000),
				item("687854a1519fb2b1e9e63c9e", "Disco SSD Samsung 1TB", 2, 120000, 240000),
			},
			Total: 1190000, PaymentMethod: "Transferencia",
		},
		{
			ID: oid("68787bd5d7295c52a76dab19"), Code: "P003", CustomerID: oid("68782d020f955f3ff6066612"), OrderedAt: orderDate,
			Items: []models.OrderItem{
				item("687854a1519fb2b1e9e63c97", "PlayStation 5", 1, 550000, 550000),
				item("687854a1519fb2b1e9e63c9e", "Disco SSD Samsung 1TB", 1, 120000, 120000),
			},
			Total: 670000, PaymentMethod: "Débito",
		},
		{
			ID: oid("68787bf7d7295c52a76dab1a"), Code: "P004", CustomerID: oid("68782d020f955f3ff6066613"), OrderedAt: orderDate,
			Items: []models.OrderItem{
				item("687854a1519fb2b1e9e63c99", "Samsung Galaxy S22 Ultra", 1, 800000, 800000),
			},
			Total: 800000, PaymentMethod: "Tarjeta de débito",
		},
		{
			ID: oid("68787bf7d7295c52a76dab1b"), Code: "P005", CustomerID: oid("68782d020f955f3ff6066614"), OrderedAt: orderDate,
			Items: []models.OrderItem{
				item("687854a1519fb2b1e9e63c9d", "Monitor LG UltraFine 5K", 1, 1300000, 1300000),
				item("687854a1519fb2b1e9e63c95", "Cámara Fotográfica Sony Alpha A7 III", 1, 1750000, 1750000),
			},
			Total: 3050000, PaymentMethod: "Crédito en cuotas",
		},
		{
			ID: oid("68787bf7d7295c52a76dab1c"), Code: "P006", CustomerID: oid("68782d020f955f3ff6066615"), OrderedAt: orderDate,
			Items: []models.OrderItem{
				item("687854a1519fb2b1e9e63c9f", "Teclado mecánico Logitech G Pro", 2, 90000, 180000),
				item("687854a1519fb2b1e9e63c98", "iPhone 14 Pro", 1, 850000, 850000),
			},
			Total: 1030000, PaymentMethod: "Pago en efectivo",
		},
	}
}
