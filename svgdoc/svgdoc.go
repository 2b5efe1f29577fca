// Package svgdoc reads the parts of SVG documents needed for stroke
// conversion: the viewbox of the root element and the data of every path.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strokekit/strokes"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoViewbox is returned for documents whose svg element has neither a
	// viewBox nor a width and height.
	ErrNoViewbox = errors.New("svg element has no viewBox")
	// ErrNotSVG is returned for documents without an svg element.
	ErrNotSVG = errors.New("no svg element found")
)

// Read reads an SVG document from r.
//
// The reader is lenient: the document's declared charset is honored, and
// undeclared entities and namespace prefixes, as found in KanjiVG files, are
// accepted. Paths are returned in document order; paths without data and
// paths inside nested svg elements are ignored. A path without an id is named path<N>, N being its position among
// all path elements.
func Read(r io.Reader) (strokes.Document, error) {
	var doc strokes.Document
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Strict = false

	log := strokes.Logger()
	seenSVG := false
	// Depth of nested svg elements below the root one.
	nested := 0
	nPaths := 0
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return doc, err
		}
		if ee, ok := t.(xml.EndElement); ok {
			if ee.Name.Local == "svg" && nested > 0 {
				nested--
			}
			continue
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			if seenSVG {
				// Nested svg elements have their own coordinate system, which
				// we don't support.
				log.Debug("ignoring nested svg element")
				nested++
				continue
			}
			seenSVG = true
			vb, err := readViewbox(se.Attr)
			if err != nil {
				return doc, err
			}
			doc.ViewBox = vb
		case "path":
			if !seenSVG {
				return doc, ErrNotSVG
			}
			nPaths++
			if nested > 0 {
				log.Debug("ignoring path in nested svg element", "index", nPaths-1)
				continue
			}
			d, _ := attr(se.Attr, "d")
			if strings.TrimSpace(d) == "" {
				log.Debug("ignoring path without data", "index", nPaths-1)
				continue
			}
			id, ok := attr(se.Attr, "id")
			if !ok || id == "" {
				id = fmt.Sprintf("path%d", nPaths-1)
			}
			doc.Paths = append(doc.Paths, strokes.PathData{ID: id, D: d})
		}
	}
	if !seenSVG {
		return doc, ErrNotSVG
	}
	return doc, nil
}

// ReadFile reads the SVG document in the named file.
func ReadFile(name string) (strokes.Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return strokes.Document{}, err
	}
	defer f.Close()
	doc, err := Read(f)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// attr returns the value of the named attribute. Names are matched without
// regard to case.
func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value, true
		}
	}
	return "", false
}

func readViewbox(attrs []xml.Attr) (strokes.Viewbox, error) {
	if v, ok := attr(attrs, "viewBox"); ok {
		return strokes.ParseViewbox(v)
	}
	w, okw := attr(attrs, "width")
	h, okh := attr(attrs, "height")
	if !okw || !okh {
		return strokes.Viewbox{}, ErrNoViewbox
	}
	width, err := parseLength(w)
	if err != nil {
		return strokes.Viewbox{}, err
	}
	height, err := parseLength(h)
	if err != nil {
		return strokes.Viewbox{}, err
	}
	return strokes.Viewbox{Width: width, Height: height}, nil
}

// parseLength parses the number of a length attribute, ignoring its unit.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	if strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("relative length %q cannot define a viewbox", s)
	}
	return f, nil
}
