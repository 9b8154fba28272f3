package seed

import (
	"context"
	"fmt"

	"pasteleria-mil-sabores/internal/domain"
	productrepo "pasteleria-mil-sabores/internal/repository/product"
)

// Apply inserts the default catalog. It is idempotent via upsert on the
// product code.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	for _, p := range defaultCatalog {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Code, err)
		}
	}
	return nil
}

// ApplyIfEmpty seeds only when the catalog has no products, so a running
// instance keeps its own edits.
func ApplyIfEmpty(ctx context.Context, repo productrepo.Repository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return Apply(ctx, repo)
}

var defaultCatalog = []domain.Product{
	{Code: "TC-001", Name: "Torta Cuadrada Vainilla", Description: "Torta cuadrada clásica de vainilla con betún artesanal.", PriceCents: 14990, Currency: "CLP", ImageRef: "tc-001.jpg", Category: "Tortas Cuadradas"},
	{Code: "TC-002", Name: "Torta Cuadrada Chocolate", Description: "Base de chocolate, relleno de crema y cobertura de ganache.", PriceCents: 16990, Currency: "CLP", ImageRef: "tc-002.jpg", Category: "Tortas Cuadradas"},
	{Code: "TC-003", Name: "Torta Cuadrada Red Velvet", Description: "Suave red velvet con queso crema y decoración artesanal.", PriceCents: 17990, Currency: "CLP", ImageRef: "tc-003.jpg", Category: "Tortas Cuadradas"},
	{Code: "TR-001", Name: "Torta Circular Chocolate", Description: "Torta circular de chocolate con capas húmedas y ganache.", PriceCents: 15990, Currency: "CLP", ImageRef: "tr-001.jpg", Category: "Tortas Circulares"},
	{Code: "TR-002", Name: "Torta Circular Frutas", Description: "Torta circular con crema y frutas frescas de temporada.", PriceCents: 16990, Currency: "CLP", ImageRef: "tr-002.jpg", Category: "Tortas Circulares"},
	{Code: "TR-003", Name: "Torta Circular Dulce de Leche", Description: "Con relleno de dulce de leche y cobertura crocante.", PriceCents: 17990, Currency: "CLP", ImageRef: "tr-003.jpg", Category: "Tortas Circulares"},
	{Code: "PI-001", Name: "Brownie Individual", Description: "Brownie artesanal con chispas de chocolate.", PriceCents: 2490, Currency: "CLP", ImageRef: "pi-001.jpg", Category: "Postres Individuales"},
	{Code: "PI-002", Name: "Cupcake Vainilla", Description: "Cupcake esponjoso con frosting de vainilla.", PriceCents: 1990, Currency: "CLP", ImageRef: "pi-002.jpg", Category: "Postres Individuales"},
	{Code: "PI-003", Name: "Cheesecake Mini", Description: "Mini cheesecake con base de galleta y topping de frutilla.", PriceCents: 2990, Currency: "CLP", ImageRef: "pi-003.jpg", Category: "Postres Individuales"},
	{Code: "VG-001", Name: "Torta Vegana Chocolate", Description: "Torta vegana húmeda de chocolate con crema vegana.", PriceCents: 18990, Currency: "CLP", ImageRef: "vg-001.jpg", Category: "Vegana"},
	{Code: "VG-002", Name: "Cupcake Vegano", Description: "Cupcake vegano con glaseado natural.", PriceCents: 2190, Currency: "CLP", ImageRef: "vg-002.jpg", Category: "Vegana"},
	{Code: "VG-003", Name: "Brownie Vegano", Description: "Brownie vegano con nueces.", PriceCents: 2390, Currency: "CLP", ImageRef: "vg-003.jpg", Category: "Vegana"},
	{Code: "SG-001", Name: "Torta Sin Gluten Vainilla", Description: "Torta sin gluten, ideal para dietas especiales.", PriceCents: 17990, Currency: "CLP", ImageRef: "sg-001.jpg", Category: "Sin Gluten"},
	{Code: "SG-002", Name: "Muffin Sin Gluten", Description: "Muffin esponjoso sin gluten con chips de chocolate.", PriceCents: 2190, Currency: "CLP", ImageRef: "sg-002.jpg", Category: "Sin Gluten"},
	{Code: "SG-003", Name: "Galletas Sin Gluten", Description: "Paquete de galletas crujientes sin gluten.", PriceCents: 1290, Currency: "CLP", ImageRef: "sg-003.jpg", Category: "Sin Gluten"},
}
