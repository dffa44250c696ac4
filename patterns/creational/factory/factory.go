// Package factory picks a file parser from a file name's extension.
package factory

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sghaida/patterns/demo"
)

// FileParser parses one kind of file.
type FileParser interface {
	Parse()
}

// XMLFileParser handles .xml files.
type XMLFileParser struct{ out io.Writer }

func (p XMLFileParser) Parse() { fmt.Fprintln(p.out, "XmlFileParser") }

// JSONFileParser handles .json files.
type JSONFileParser struct{ out io.Writer }

func (p JSONFileParser) Parse() { fmt.Fprintln(p.out, "JsonFileParser") }

// UnsupportedFileError rejects a file name the factory has no parser for.
type UnsupportedFileError struct{ FileName string }

// Error implements the error interface.
func (e UnsupportedFileError) Error() string {
	return "factory: I don't know how to deal with " + strconv.Quote(e.FileName)
}

// FileParserFactory creates parsers by file name.
type FileParserFactory interface {
	CreateFromFileName(fileName string) (FileParser, error)
}

// StandardFileParserFactory knows "xml" and "json". The extension is
// whatever follows the last dot; a name without a dot is taken whole, so
// "json" selects the JSON parser.
type StandardFileParserFactory struct {
	Out io.Writer
}

// CreateFromFileName returns the parser for fileName's extension or an UnsupportedFileError.
func (f StandardFileParserFactory) CreateFromFileName(fileName string) (FileParser, error) {
	switch extension(fileName) {
	case "xml":
		return XMLFileParser{out: f.Out}, nil
	case "json":
		return JSONFileParser{out: f.Out}, nil
	}
	return nil, UnsupportedFileError{FileName: fileName}
}

func extension(fileName string) string {
	return fileName[strings.LastIndexByte(fileName, '.')+1:]
}

// Demo parses a JSON file and rejects a text file.
var Demo = demo.Define("factory", demo.Creational,
	"Choose a concrete product from its input without exposing the choice",
	func(w io.Writer) error {
		var f FileParserFactory = StandardFileParserFactory{Out: w}
		for _, name := range []string{"filename.json", "notes.txt"} {
			parser, err := f.CreateFromFileName(name)
			if err != nil {
				fmt.Fprintf(w, "rejected: %v\n", err)
				continue
			}
			parser.Parse()
		}
		return nil
	})
