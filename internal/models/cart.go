package models

// CartItem est un instantané du produit au moment de l'ajout :
// un changement de prix ultérieur dans le catalogue n'affecte pas le panier.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"` // prix unitaire en centimes
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// CartTotals est toujours dérivé, jamais stocké
type CartTotals struct {
	Subtotal   int `json:"subtotal"`
	Shipping   int `json:"shipping"`
	VAT        int `json:"vat"`
	GrandTotal int `json:"grandTotal"`
}
