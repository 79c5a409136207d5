package view

import (
	"embed"
	"html/template"

	"github.com/Rhymond/go-money"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names passed to gin's HTML renderer
const (
	PageApology  = "apology.html"
	PageIndex    = "index.html"
	PageBuy      = "buy.html"
	PageSell     = "sell.html"
	PageHistory  = "history.html"
	PageQuote    = "quote.html"
	PageQuoted   = "quoted.html"
	PageLogin    = "login.html"
	PageRegister = "register.html"
)

const timestampLayout = "2006-01-02 15:04:05"

// Page carries everything a template may render. Each page reads only the
// fields it needs.
type Page struct {
	Title     string
	LoggedIn  bool
	Code      int
	Message   string
	Portfolio *entity.Portfolio
	Holdings  []entity.Holding
	History   []entity.HistoryEntry
	Quote     *entity.Quote
}

// FuncMap returns the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"usd":        USD,
		"abs":        abs,
		"timeLayout": func() string { return timestampLayout },
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(FuncMap()).ParseFS(templatesFS, "templates/*.html")
}

// MustTemplates is like Templates but panics on a parse error
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// USD formats cents as a dollar amount, for example "$1,234.50"
func USD(cents int64) string {
	return money.New(cents, money.USD).Display()
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
