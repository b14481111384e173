package database

import (
	"log"
	"sync"
)

// CQL des requêtes commandes. gocql met en cache la préparation par session
// et par texte de requête : tout passage par ces constantes réutilise le
// même prepared statement côté serveur.
const (
	InsertOrderCQL = `INSERT INTO orders (order_id, customer_name, customer_email, customer_phone,
		ship_address, ship_city, ship_country, ship_zip, items_json, subtotal, shipping, vat, grand_total,
		payment_method, order_timestamp, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	SelectOrderByIDCQL = `SELECT order_id, customer_name, customer_email, customer_phone,
		ship_address, ship_city, ship_country, ship_zip, items_json, subtotal, shipping, vat, grand_total,
		payment_method, order_timestamp, status FROM orders WHERE order_id = ?`
)

var preparedOnce sync.Once

// InitPreparedStatements pré-chauffe les prepared statements : on paie le
// round-trip de PREPARE au démarrage plutôt que sur la première commande.
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		session, err := GetOrdersSession()
		if err != nil {
			log.Printf("⚠️ Impossible d'initialiser les prepared statements: %v", err)
			return
		}

		// Lecture à vide : prépare SELECT sans toucher aux données
		_ = session.Query(SelectOrderByIDCQL, "").Iter().Close()

		log.Println("✅ Prepared statements initialisés")
	})
}
