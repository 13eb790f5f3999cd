package ofxparser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
)

var countTransactions = xpath.MustCompile("count(//STMTTRN)")

// ParsedDocument is a loaded OFX document.
type ParsedDocument struct {
	Header   Header
	Encoding EncodingTag
	XML      string         // the normalized XML the tree was parsed from
	Root     *xmlquery.Node // document node; the OFX element is its only element child
}

// Find returns every node matching the XPath expression.
func (d *ParsedDocument) Find(expr string) ([]*xmlquery.Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}
	return xmlquery.QuerySelectorAll(d.Root, compiled), nil
}

// FindOne returns the first node matching the XPath expression, or nil.
func (d *ParsedDocument) FindOne(expr string) (*xmlquery.Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}
	return xmlquery.QuerySelector(d.Root, compiled), nil
}

// Text returns the inner text of the first node matching expr, or "" when there is none.
func (d *ParsedDocument) Text(expr string) string {
	n, err := d.FindOne(expr)
	if err != nil || n == nil {
		return ""
	}
	return n.InnerText()
}

// TransactionCount returns the number of STMTTRN elements in the document.
func (d *ParsedDocument) TransactionCount() int {
	if d.Root == nil {
		return 0
	}
	v, ok := countTransactions.Evaluate(xmlquery.CreateXPathNavigator(d.Root)).(float64)
	if !ok {
		return 0
	}
	return int(v)
}

// Parser loads OFX documents. It is immutable once built and safe for concurrent use.
type Parser struct {
	aggregates aggregateSet
	balance    bool
}

// Option configures a Parser.
type Option func(*options)

type options struct {
	aggregates []string
	balance    bool
}

// WithAggregates adds tags to the known aggregate table. Lone opening tags naming an aggregate
// are left open for their explicit end tag instead of being closed as empty elements.
func WithAggregates(tags ...string) Option {
	return func(o *options) {
		o.aggregates = append(o.aggregates, tags...)
	}
}

// WithTagBalancing toggles the token level repair run after line normalization. It is enabled by
// default.
func WithTagBalancing(enabled bool) Option {
	return func(o *options) {
		o.balance = enabled
	}
}

// New returns a Parser configured with the given options.
func New(opts ...Option) *Parser {
	o := options{balance: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		aggregates: newAggregateSet(o.aggregates...),
		balance:    o.balance,
	}
}

var defaultParser = New()

// LoadFromPath loads the OFX document at path with the default parser.
func LoadFromPath(path string) (*ParsedDocument, error) {
	return defaultParser.LoadFromPath(path)
}

// LoadFromReader loads the OFX document read from r with the default parser.
func LoadFromReader(r io.Reader) (*ParsedDocument, error) {
	return defaultParser.LoadFromReader(r)
}

// LoadFromText loads the OFX document in text with the default parser.
func LoadFromText(text string) (*ParsedDocument, error) {
	return defaultParser.LoadFromText(text)
}

// LoadFromBytes loads the OFX document in data with the default parser.
func LoadFromBytes(data []byte) (*ParsedDocument, error) {
	return defaultParser.LoadFromBytes(data)
}

// LoadFromPath reads the file at path and loads it. A missing file fails with ErrNotFound.
func (p *Parser) LoadFromPath(path string) (*ParsedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("error - reading %s: %w", path, err)
	}
	return p.LoadFromBytes(data)
}

// LoadFromReader reads r to the end and loads the data.
func (p *Parser) LoadFromReader(r io.Reader) (*ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.LoadFromBytes(data)
}

// LoadFromText loads the OFX document in text.
func (p *Parser) LoadFromText(text string) (*ParsedDocument, error) {
	return p.LoadFromBytes([]byte(text))
}

// LoadFromBytes runs the whole pipeline over data: charset detection, decoding, splitting,
// sanitizing, SGML normalization, tag balancing and loading.
func (p *Parser) LoadFromBytes(data []byte) (*ParsedDocument, error) {
	headerRegion := data
	if idx := rootIndex(data); idx >= 0 {
		headerRegion = data[:idx]
	}
	tag := DetectEncoding(headerRegion)
	text := Decode(data, tag)

	header, body, err := SplitDocument(text)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("split document: header %d bytes, body %d bytes", len(header), len(body))

	xmlText := normalizeSGML(Sanitize(body), p.aggregates.contains)
	if p.balance {
		xmlText = balanceTags(xmlText, p.aggregates)
	}
	glog.V(3).Infof("cleanXML: %s", xmlText)

	root, err := LoadXML(xmlText)
	if err != nil {
		return nil, err
	}
	return &ParsedDocument{
		Header:   ParseHeader(header),
		Encoding: tag,
		XML:      xmlText,
		Root:     root,
	}, nil
}
