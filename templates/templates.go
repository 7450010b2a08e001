package templates

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "RM " + d.StringFixed(2)
	},
}

// Views parses the page templates rendered by the HTTP handlers.
func Views() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "layout.html", "catalog.html", "cart.html", "not_found.html"))
}

// Emails parses the notification email templates.
func Emails() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "order_notification.html"))
}
