package catalog

import (
	"sort"

	"audiophile_back_end/internal/models"
)

// Le catalogue est statique : chargé une fois au démarrage, jamais modifié.
var (
	bySlug map[string]models.Product
	byID   map[string]models.Product
)

func init() {
	bySlug = make(map[string]models.Product, len(products))
	byID = make(map[string]models.Product, len(products))
	for _, p := range products {
		bySlug[p.Slug] = p
		byID[p.ID] = p
	}
}

// ValidCategory vérifie qu'une catégorie fait partie des trois rayons du magasin
func ValidCategory(category string) bool {
	switch category {
	case "headphones", "speakers", "earphones":
		return true
	}
	return false
}

// All retourne tous les produits dans l'ordre du seed
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID retourne un produit par identifiant
func ByID(id string) (models.Product, bool) {
	p, ok := byID[id]
	return p, ok
}

// BySlug retourne un produit par slug
func BySlug(slug string) (models.Product, bool) {
	p, ok := bySlug[slug]
	return p, ok
}

// ByCategory retourne les produits d'un rayon, nouveautés d'abord puis prix décroissant
func ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].New != out[j].New {
			return out[i].New
		}
		return out[i].Price > out[j].Price
	})
	return out
}
