package nav

// Variantes de pages du storefront. Chaque variante porte sa donnée associée
// (catégorie, slug ou identifiant de commande), rien d'autre.
type PageKind string

const (
	KindHome              PageKind = "home"
	KindCategory          PageKind = "category"
	KindProductDetail     PageKind = "product"
	KindCheckout          PageKind = "checkout"
	KindOrderConfirmation PageKind = "order-confirmation"
	KindOrderLookup       PageKind = "order"
)

// Page est l'union taguée : Kind détermine quel champ associé est renseigné
type Page struct {
	Kind     PageKind `json:"page"`
	Category string   `json:"category,omitempty"`
	Slug     string   `json:"slug,omitempty"`
	OrderID  string   `json:"orderId,omitempty"`
}

func Home() Page                  { return Page{Kind: KindHome} }
func Checkout() Page              { return Page{Kind: KindCheckout} }
func Category(kind string) Page   { return Page{Kind: KindCategory, Category: kind} }
func ProductDetail(s string) Page { return Page{Kind: KindProductDetail, Slug: s} }

func OrderConfirmation(orderID string) Page {
	return Page{Kind: KindOrderConfirmation, OrderID: orderID}
}

func OrderLookup(orderID string) Page {
	return Page{Kind: KindOrderLookup, OrderID: orderID}
}

// Navigator est la pile de navigation d'une session : toujours au moins une
// entrée, la page courante est le sommet.
type Navigator struct {
	stack []Page
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Page{Home()}}
}

func (n *Navigator) Current() Page {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Navigate empile une nouvelle page et la rend courante
func (n *Navigator) Navigate(p Page) {
	n.stack = append(n.stack, p)
}

// GoBack dépile et retourne la nouvelle page courante.
// Au fond de la pile, on repart à l'accueil au lieu d'échouer.
func (n *Navigator) GoBack() Page {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	} else {
		n.stack = append(n.stack, Home())
	}
	return n.Current()
}
