// Package chat turns one shopper message into one reply using a fixed chain
// of keyword and catalog matchers. It keeps no state between calls.
package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
)

// Catalog is the read-only view of the product store the responder needs.
type Catalog interface {
	FindByNameInText(ctx context.Context, text string) (*models.Product, error)
	FindByDescriptionSubstring(ctx context.Context, query string) ([]*models.Product, error)
}

type Intent string

const (
	IntentProduct  Intent = "product"
	IntentCategory Intent = "category"
	IntentPrice    Intent = "price"
	IntentHelp     Intent = "help"
	IntentFallback Intent = "fallback"
)

// Intents lists every intent in matching order, fallback last.
var Intents = []Intent{IntentProduct, IntentCategory, IntentPrice, IntentHelp, IntentFallback}

const (
	categoryHeader = "Here are our electronic products:\n\n"
	priceHeader    = "Here are our current prices:\n"

	HelpText = "I can help you with:\n" +
		"• Product information\n" +
		"• Prices\n" +
		"• Product recommendations\n" +
		"Just ask about any product or category!"

	FallbackText = "I can provide information about our products. Try asking about:\n" +
		"• Specific products (e.g., 'Tell me about the Smart Watch')\n" +
		"• Prices (e.g., 'How much is the Laptop Pro?')\n" +
		"• Categories (e.g., 'Show me electronics')"
)

var (
	categoryKeywords = []string{"electronics", "tech", "gadgets"}
	priceKeywords    = []string{"price", "cost", "how much"}
	helpKeywords     = []string{"help", "support", "assist"}
)

// categoryQuery is matched against product descriptions.
const categoryQuery = "electronics"

type Reply struct {
	Intent Intent
	Text   string
}

// A matcher reports ok=false to pass the message on to the next matcher.
type matcher struct {
	intent Intent
	match  func(ctx context.Context, msg string) (text string, ok bool, err error)
}

type Responder struct {
	catalog  Catalog
	matchers []matcher
}

func NewResponder(catalog Catalog) *Responder {
	r := &Responder{catalog: catalog}

	r.matchers = []matcher{
		{intent: IntentProduct, match: r.matchProduct},
		{intent: IntentCategory, match: r.matchCategory},
		{intent: IntentPrice, match: r.matchPrice},
		{intent: IntentHelp, match: matchHelp},
	}

	return r
}

// Respond walks the matchers in order and returns the first reply. Catalog
// failures are returned as errors and never replaced by the fallback text.
func (r *Responder) Respond(ctx context.Context, message string) (Reply, error) {

	msg := strings.ToLower(message)

	for _, m := range r.matchers {
		text, ok, err := m.match(ctx, msg)
		if err != nil {
			return Reply{}, fmt.Errorf("%s matcher: %w", m.intent, err)
		}

		if ok {
			return Reply{Intent: m.intent, Text: text}, nil
		}
	}

	return Reply{Intent: IntentFallback, Text: FallbackText}, nil
}

// The product name has to appear inside the message, not the other way round.
func (r *Responder) matchProduct(ctx context.Context, msg string) (string, bool, error) {

	product, err := r.catalog.FindByNameInText(ctx, msg)
	if err != nil || product == nil {
		return "", false, err
	}

	return FormatProduct(product), true, nil
}

func (r *Responder) matchCategory(ctx context.Context, msg string) (string, bool, error) {

	if !containsAny(msg, categoryKeywords) {
		return "", false, nil
	}

	products, err := r.catalog.FindByDescriptionSubstring(ctx, categoryQuery)
	if err != nil || len(products) == 0 {
		return "", false, err
	}

	var b strings.Builder
	b.WriteString(categoryHeader)

	for _, p := range products {
		fmt.Fprintf(&b, "• %s - $%s\n", p.Name, FormatPrice(p.Price))
	}

	return b.String(), true, nil
}

func (r *Responder) matchPrice(ctx context.Context, msg string) (string, bool, error) {

	if !containsAny(msg, priceKeywords) {
		return "", false, nil
	}

	// An empty query matches every description.
	products, err := r.catalog.FindByDescriptionSubstring(ctx, "")
	if err != nil {
		return "", false, err
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("• %s: $%s", p.Name, FormatPrice(p.Price)))
	}

	return priceHeader + strings.Join(lines, "\n"), true, nil
}

func matchHelp(_ context.Context, msg string) (string, bool, error) {
	return HelpText, containsAny(msg, helpKeywords), nil
}

func FormatProduct(p *models.Product) string {
	return p.Name + "\nPrice: $" + FormatPrice(p.Price) + "\n" + p.Description
}

// FormatPrice renders the shortest decimal that round-trips, so 199.99 stays
// "199.99" and 15 becomes "15".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}

	return false
}
