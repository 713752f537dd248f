package render

// booleanAttrs render as a bare attribute name when set.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"default":   true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
