package orders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const suffixLength = 9

// NewOrderID génère un identifiant horodaté avec suffixe aléatoire,
// format ORD-<epoch ms>-<9 caractères base36>. Suffisant pour une boutique
// de démo, pas garanti globalement unique — une vraie génération côté base
// (UUID) serait nécessaire en production.
func NewOrderID() string {
	var b strings.Builder
	for i := 0; i < suffixLength; i++ {
		b.WriteByte(suffixAlphabet[rand.Intn(len(suffixAlphabet))])
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), b.String())
}
