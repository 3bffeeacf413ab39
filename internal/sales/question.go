package sales

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrExtraction is returned when a question does not name a product, a city
// and a minimum sales threshold.
var ErrExtraction = eris.New("sales: could not extract valid details from the question")

var (
	productRe  = regexp.MustCompile(`(?i)units of\s+([\p{L}\p{M}\p{N}_\s]+?)\s+were`)
	cityRe     = regexp.MustCompile(`(?i)sold in\s+([\p{L}\p{M}\p{N}_\s]+?)\s+on`)
	minSalesRe = regexp.MustCompile(`(?i)at\s+least\s+(\d+)`)
)

// Query is what a sales question asks for.
type Query struct {
	Product  string
	City     string
	MinSales int
}

// ParseQuestion extracts the product, city and minimum units from questions
// such as "How many units of Fish were sold in Lagos on transactions with
// at least 199 units?".
func ParseQuestion(question string) (Query, error) {
	var q Query

	if m := productRe.FindStringSubmatch(question); m != nil {
		q.Product = strings.TrimSpace(m[1])
	}
	if m := cityRe.FindStringSubmatch(question); m != nil {
		q.City = strings.TrimSpace(m[1])
	}
	minFound := false
	if m := minSalesRe.FindStringSubmatch(question); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Query{}, eris.Wrapf(ErrExtraction, "minimum sales %q", m[1])
		}
		q.MinSales = n
		minFound = true
	}

	if q.Product == "" || q.City == "" || !minFound {
		return Query{}, ErrExtraction
	}
	return q, nil
}
