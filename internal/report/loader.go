package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/quickprint-soft/gtest-run/internal/errors"
)

// Element names of the JUnit schema.
const (
	elemSuites  = "testsuites"
	elemSuite   = "testsuite"
	elemCase    = "testcase"
	elemFailure = "failure"
	elemError   = "error"
	elemSkipped = "skipped"
)

// node is a generic XML element. Decoding into a generic tree lets the loader
// accept any root shape and defer attribute conversion to AttrInt.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

// LoadFile reads and parses the report at path.
// It returns a NotFound error if the path does not exist and a Parse error if
// the content is not well-formed XML.
func LoadFile(path string) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("XML file", path)
		}
		return nil, errors.IO("failed to read XML file", path, err)
	}
	if info.IsDir() {
		return nil, errors.IO("failed to read XML file", path, fmt.Errorf("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO("failed to read XML file", path, err)
	}
	defer func() { _ = f.Close() }()

	rep, err := Parse(f)
	if err != nil {
		return nil, errors.Parse(path, err)
	}
	return rep, nil
}

// Parse reads one XML document from r and extracts its test suites.
func Parse(r io.Reader) (*Report, error) {
	root, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}

	suiteNodes := findSuites(root)
	rep := &Report{Suites: make([]Suite, 0, len(suiteNodes))}
	for _, n := range suiteNodes {
		rep.Suites = append(rep.Suites, toSuite(n))
	}
	return rep, nil
}

// decodeDocument decodes the single root element of the document and rejects
// stray text or additional elements around it.
func decodeDocument(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root *node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				line, _ := dec.InputPos()
				return nil, fmt.Errorf("line %d: junk after document element", line)
			}
			var n node
			if err := dec.DecodeElement(&n, &t); err != nil {
				return nil, err
			}
			root = &n
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				line, _ := dec.InputPos()
				return nil, fmt.Errorf("line %d: text outside of the document element", line)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no element found")
	}
	return root, nil
}

// findSuites dispatches on the root shape:
// a <testsuites> root yields its direct <testsuite> children, a <testsuite>
// root is itself the only suite, and any other root yields every <testsuite>
// descendant in document order.
func findSuites(root *node) []*node {
	switch root.XMLName.Local {
	case elemSuites:
		return children(root, elemSuite)
	case elemSuite:
		return []*node{root}
	default:
		var found []*node
		collectDescendants(root, elemSuite, &found)
		return found
	}
}

func children(n *node, name string) []*node {
	var out []*node
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

func firstChild(n *node, name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func collectDescendants(n *node, name string, found *[]*node) {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			*found = append(*found, child)
		}
		collectDescendants(child, name, found)
	}
}

func toSuite(n *node) Suite {
	name := attr(n.Attrs, "name")
	if name == "" {
		name = UnnamedSuite
	}

	suite := Suite{
		Name:     name,
		Tests:    AttrInt(attr(n.Attrs, "tests")),
		Failures: AttrInt(attr(n.Attrs, "failures")),
		Errors:   AttrInt(attr(n.Attrs, "errors")),
		Skipped:  AttrInt(attr(n.Attrs, "skipped")),
		Time:     attr(n.Attrs, "time"),
	}

	for _, c := range children(n, elemCase) {
		suite.Cases = append(suite.Cases, toCase(c))
	}
	return suite
}

func toCase(n *node) Case {
	c := Case{
		ClassName: attr(n.Attrs, "classname"),
		Name:      attr(n.Attrs, "name"),
		Failure:   toMarker(firstChild(n, elemFailure)),
		Error:     toMarker(firstChild(n, elemError)),
		Skipped:   firstChild(n, elemSkipped) != nil,
	}
	return c
}

func toMarker(n *node) *Marker {
	if n == nil {
		return nil
	}
	return &Marker{
		Message: attr(n.Attrs, "message"),
		Text:    n.Text,
	}
}

// charsetReader decodes documents that declare a non-UTF-8 encoding. Labels
// missing from the IANA registry, such as "ascii", are looked up among the
// WHATWG labels.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if isUTF8Label(label) {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
		}
	}
	return enc.NewDecoder().Reader(input), nil
}

func isUTF8Label(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8":
		return true
	}
	return false
}
