// Package markup provides pure Go inspection of converter and decorator
// output: well-formedness checks and XPath queries over decoration spans.
// It is a tooling surface; the conversion hot paths never depend on it.
package markup

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/jonathanface/MiniDocter-sub000/core/assoc"
	"github.com/jonathanface/MiniDocter-sub000/core/errors"
)

// Fragment is a parsed piece of editor HTML.
type Fragment struct {
	root *xmlquery.Node
}

// ValidationResult contains the result of a well-formedness check.
type ValidationResult struct {
	Valid  bool
	Errors []*errors.ParseError
}

// htmlEntities covers the entity forms the converters emit that plain XML
// parsing does not know.
var htmlEntities = map[string]string{
	"nbsp": "\u00a0",
}

// normalizeEntities rewrites widget entity forms into numeric references so
// the XML parser accepts them.
var normalizeEntities = strings.NewReplacer(
	"&nbsp;", "&#160;",
)

// wrapFragment closes over a fragment with a synthetic root so multi-block
// HTML parses as one document.
func wrapFragment(html string) string {
	return "<fragment>" + normalizeEntities.Replace(html) + "</fragment>"
}

// Parse parses an editor HTML fragment.
func Parse(html string) (*Fragment, error) {
	root, err := xmlquery.Parse(strings.NewReader(wrapFragment(html)))
	if err != nil {
		return nil, &errors.ParseError{Format: "HTML", Message: "markup does not parse", Err: err}
	}
	return &Fragment{root: root}, nil
}

// Validate checks an editor HTML fragment for well-formedness. Malformed
// markup is reported, never fatal.
func Validate(html string) ValidationResult {
	result := ValidationResult{Valid: true}

	decoder := xml.NewDecoder(bytes.NewReader([]byte(wrapFragment(html))))
	decoder.Entity = htmlEntities

	for {
		_, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, &errors.ParseError{Format: "HTML", Message: err.Error()})
			break
		}
	}

	return result
}

// Decoration is one association decoration span found in markup.
type Decoration struct {
	AssociationID string
	Type          assoc.Type
	Color         string
	Text          string
}

// decorationQuery selects decoration spans by their class marker.
var decorationQuery = "//span[@class='" + assoc.DecorationClass + "']"

// Decorations lists every decoration span in the fragment, in document
// order.
func (f *Fragment) Decorations() ([]*Decoration, error) {
	if _, err := xpath.Compile(decorationQuery); err != nil {
		return nil, errors.Wrap(err, "invalid xpath")
	}
	nodes, err := xmlquery.QueryAll(f.root, decorationQuery)
	if err != nil {
		return nil, errors.Wrap(err, "xpath query failed")
	}

	decorations := make([]*Decoration, 0, len(nodes))
	for _, n := range nodes {
		decorations = append(decorations, &Decoration{
			AssociationID: n.SelectAttr("data-assoc-id"),
			Type:          assoc.Type(n.SelectAttr("data-assoc-type")),
			Color:         styleColor(n.SelectAttr("style")),
			Text:          n.InnerText(),
		})
	}
	return decorations, nil
}

// InnerText returns the visible text of the fragment with all markup
// removed.
func (f *Fragment) InnerText() string {
	return f.root.InnerText()
}

// XPath executes an arbitrary XPath query against the fragment and returns
// the inner text of each match.
func (f *Fragment) XPath(expr string) ([]string, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, errors.Wrap(err, "invalid xpath")
	}
	nodes, err := xmlquery.QueryAll(f.root, expr)
	if err != nil {
		return nil, errors.Wrap(err, "xpath query failed")
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.InnerText()
	}
	return out, nil
}

// styleColor extracts the color value from an inline style attribute.
func styleColor(style string) string {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(k) == "color" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
