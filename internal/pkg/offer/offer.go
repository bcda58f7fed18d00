// Package offer maps loosely structured Duffel result items onto the fixed
// offer schema. Parsing is best-effort: an item missing a required field is
// dropped, never patched.
package offer

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// MaxOffers bounds how many provider items are considered, in provider order.
const MaxOffers = 10

// lookup reads required fields from one item. The first miss is sticky, so a
// run of reads can be checked once at the end.
type lookup struct {
	item gjson.Result
	ok   bool
}

func newLookup(item gjson.Result) *lookup {
	return &lookup{item: item, ok: item.IsObject()}
}

func (l *lookup) str(path string) string {
	if !l.ok {
		return ""
	}

	v := l.item.Get(path)
	if v.Type != gjson.String {
		l.ok = false
		return ""
	}

	return v.Str
}

func (l *lookup) array(path string) []gjson.Result {
	if !l.ok {
		return nil
	}

	v := l.item.Get(path)
	if !v.IsArray() || len(v.Array()) == 0 {
		l.ok = false
		return nil
	}

	return v.Array()
}

func optionalString(v gjson.Result) *string {
	if v.Type != gjson.String {
		return nil
	}

	s := v.Str
	return &s
}

func optionalNumber(v gjson.Result) *float64 {
	if v.Type != gjson.Number {
		return nil
	}

	n := v.Num
	return &n
}

func stringOr(v gjson.Result, fallback string) string {
	if v.Type != gjson.String {
		return fallback
	}

	return v.Str
}

func stringf(format string, v gjson.Result) *string {
	if v.Type != gjson.String || v.Str == "" {
		return nil
	}

	s := fmt.Sprintf(format, v.Str)
	return &s
}

// head returns the items eligible for mapping and the full count.
func head(items gjson.Result) ([]gjson.Result, int) {
	if !items.IsArray() {
		return nil, 0
	}

	all := items.Array()
	if len(all) > MaxOffers {
		return all[:MaxOffers], len(all)
	}

	return all, len(all)
}
