package models

// ImageSet regroupe les trois variantes responsive d'une image produit
type ImageSet struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
}

// BoxItem représente un élément inclus dans la boîte du produit
type BoxItem struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

// RelatedProduct référence un produit suggéré ("you may also like")
type RelatedProduct struct {
	Slug  string   `json:"slug"`
	Name  string   `json:"name"`
	Image ImageSet `json:"image"`
}

type ProductGallery struct {
	First  ImageSet `json:"first"`
	Second ImageSet `json:"second"`
	Third  ImageSet `json:"third"`
}

// Product est chargé une seule fois au démarrage et n'est jamais modifié.
// Le prix est en centimes (unités mineures) pour éviter les erreurs d'arrondi.
type Product struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Category    string           `json:"category"` // headphones | speakers | earphones
	Price       int              `json:"price"`
	New         bool             `json:"new"`
	Description string           `json:"description"`
	Features    string           `json:"features"`
	Includes    []BoxItem        `json:"includes"`
	Images      ImageSet         `json:"images"`
	Gallery     ProductGallery   `json:"gallery"`
	Others      []RelatedProduct `json:"others"`
}
