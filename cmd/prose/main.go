// Command prose is the CLI tool for the story-text core.
// It decorates chapter text with association highlights and converts chapter
// content between the document model and editor HTML.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jonathanface/MiniDocter-sub000/core/assoc"
	"github.com/jonathanface/MiniDocter-sub000/core/markup"
	"github.com/jonathanface/MiniDocter-sub000/core/richtext"
	"github.com/jonathanface/MiniDocter-sub000/core/story"
	"github.com/jonathanface/MiniDocter-sub000/internal/logging"
	"github.com/jonathanface/MiniDocter-sub000/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for prose.
var CLI struct {
	// Global flags
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON"`

	Decorate DecorateCmd  `cmd:"" help:"Decorate association matches in chapter HTML"`
	Segments SegmentsCmd  `cmd:"" help:"Partition chapter text into association segments"`
	Convert  ConvertGroup `cmd:"" help:"Document model conversions"`
	Inspect  InspectGroup `cmd:"" help:"Inspect decorated markup"`
	Version  VersionCmd   `cmd:"" help:"Print version information"`
}

// ConvertGroup contains document conversion operations.
type ConvertGroup struct {
	Encode EncodeCmd `cmd:"" help:"Encode document JSON to editor HTML"`
	Decode DecodeCmd `cmd:"" help:"Decode editor HTML to document JSON"`
}

// InspectGroup contains markup inspection operations.
type InspectGroup struct {
	Spans    SpansCmd    `cmd:"" help:"List decoration spans in markup"`
	Validate ValidateCmd `cmd:"" help:"Check markup well-formedness"`
	Text     TextCmd     `cmd:"" help:"Extract visible text from markup"`
}

// loadAssociations reads a JSON file of backend association records.
func loadAssociations(path string) ([]*assoc.Association, error) {
	data, err := validation.ReadFileChecked(path)
	if err != nil {
		return nil, err
	}
	var wires []assoc.Wire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("failed to parse associations: %w", err)
	}
	return assoc.FromWireList(wires), nil
}

// loadDocument reads a document JSON file.
func loadDocument(path string) (*story.Document, error) {
	data, err := validation.ReadFileChecked(path)
	if err != nil {
		return nil, err
	}
	var doc story.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

// paletteByName maps the --palette flag to a palette.
func paletteByName(name string) assoc.Palette {
	if name == "light" {
		return assoc.LightPalette
	}
	return assoc.DarkPalette
}

// DecorateCmd decorates association matches in chapter HTML.
type DecorateCmd struct {
	Path    string `arg:"" help:"Path to chapter HTML or text" type:"existingfile"`
	Assoc   string `required:"" help:"Path to associations JSON" type:"existingfile"`
	Palette string `default:"dark" enum:"dark,light" help:"Color palette"`
	Strip   bool   `help:"Strip existing decorations before decorating"`
}

func (c *DecorateCmd) Run() error {
	data, err := validation.ReadFileChecked(c.Path)
	if err != nil {
		return err
	}
	assocs, err := loadAssociations(c.Assoc)
	if err != nil {
		return err
	}
	html := string(data)
	if c.Strip {
		html = assoc.StripDecorations(html)
	}
	decorated := assoc.DecorateHTML(html, assocs, paletteByName(c.Palette))
	logging.Info("decorated", "associations", len(assocs), "bytes", len(decorated))
	fmt.Println(decorated)
	return nil
}

// SegmentsCmd partitions chapter text into association segments.
type SegmentsCmd struct {
	Path  string `arg:"" help:"Path to chapter text" type:"existingfile"`
	Assoc string `required:"" help:"Path to associations JSON" type:"existingfile"`
}

// segmentOut is the JSON shape of one emitted segment.
type segmentOut struct {
	Text          string `json:"text"`
	AssociationID string `json:"association_id,omitempty"`
}

func (c *SegmentsCmd) Run() error {
	data, err := validation.ReadFileChecked(c.Path)
	if err != nil {
		return err
	}
	assocs, err := loadAssociations(c.Assoc)
	if err != nil {
		return err
	}
	segs := assoc.Segments(string(data), assocs)
	out := make([]segmentOut, 0, len(segs))
	matches := 0
	for _, s := range segs {
		so := segmentOut{Text: s.Text}
		if s.Association != nil {
			so.AssociationID = s.Association.ID
			matches++
		}
		out = append(out, so)
	}
	logging.MatchPass(len(assocs), matches)
	return writeJSON(out)
}

// EncodeCmd encodes document JSON to editor HTML.
type EncodeCmd struct {
	Path string `arg:"" help:"Path to document JSON" type:"existingfile"`
}

func (c *EncodeCmd) Run() error {
	doc, err := loadDocument(c.Path)
	if err != nil {
		return err
	}
	logging.Conversion("encode", len(doc.Paragraphs))
	fmt.Println(richtext.EncodeDocument(doc))
	return nil
}

// DecodeCmd decodes editor HTML to document JSON.
type DecodeCmd struct {
	Path  string `arg:"" help:"Path to editor HTML" type:"existingfile"`
	Prior string `help:"Path to previously loaded document JSON; paragraph ids are preserved positionally" type:"existingfile"`
}

func (c *DecodeCmd) Run() error {
	data, err := validation.ReadFileChecked(c.Path)
	if err != nil {
		return err
	}
	var priorIDs []string
	if c.Prior != "" {
		prior, err := loadDocument(c.Prior)
		if err != nil {
			return err
		}
		priorIDs = prior.IDs()
	}
	doc := richtext.DecodeDocument(string(data), priorIDs)
	logging.Conversion("decode", len(doc.Paragraphs))
	return writeJSON(doc)
}

// SpansCmd lists decoration spans in markup.
type SpansCmd struct {
	Path string `arg:"" help:"Path to decorated HTML" type:"existingfile"`
}

func (c *SpansCmd) Run() error {
	data, err := validation.ReadFileChecked(c.Path)
	if err != nil {
		return err
	}
	frag, err := markup.Parse(string(data))
	if err != nil {
		return err
	}
	decorations, err := frag.Decorations()
	if err != nil {
		return err
	}
	return writeJSON(decorations)
}

// ValidateCmd checks markup well-formedness.
type ValidateCmd struct {
	Path string `arg:"" help:"Path to markup file" type:"existingfile"`
}

func (c *ValidateCmd) Run() error {
	data, err := validation.ReadFileChecked(c.Path)
	if err != nil {
		return err
	}
	result := markup.Validate(string(data))
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e.Message)
		}
		return fmt.Errorf("markup is not well-formed")
	}
	fmt.Println("ok")
	return nil
}

// TextCmd extracts visible text from markup.
type TextCmd struct {
	Path string `arg:"" help:"Path to markup file" type:"existingfile"`
}

func (c *TextCmd) Run() error {
	data, err := validation.ReadFileChecked(c.Path)
	if err != nil {
		return err
	}
	frag, err := markup.Parse(string(data))
	if err != nil {
		return err
	}
	fmt.Println(frag.InnerText())
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("prose %s\n", version)
	return nil
}

// writeJSON prints v as indented JSON on stdout.
func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("prose"),
		kong.Description("Association highlighting and document conversion for story chapters."),
		kong.UsageOnError(),
	)

	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), format)

	ctx.FatalIfErrorf(ctx.Run())
}
