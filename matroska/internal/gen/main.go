// Command gen transcribes the Matroska element table (ebml_matroska.xml,
// from the matroska-specification repository) into the generated files of
// the matroska package: ids.go, leaf.go, and registry.go.
//
// Usage:
//
//	go run ./internal/gen -schema ebml_matroska.xml -out .
package main

import (
	"bytes"
	"encoding/xml"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type schemaElement struct {
	Name string `xml:"name,attr"`
	Path string `xml:"path,attr"`
	ID   string `xml:"id,attr"`
	Type string `xml:"type,attr"`
}

type schema struct {
	Elements []schemaElement `xml:"element"`
}

// goName adjusts upstream names that fight Go initialism conventions.
var goName = map[string]string{
	"EBML":             "Ebml",
	"CRC-32":           "Crc32",
	"TimecodeScale":    "TimestampScale",
	"Timecode":         "Timestamp",
	"FileMediaType":    "FileMimeType",
	"SegmentUID":       "SegmentUUID",
	"PrevUID":          "PrevUUID",
	"NextUID":          "NextUUID",
	"ChapterTranslateEditionUid": "ChapterTranslateEditionUID",
}

// kind maps schema type attributes to leaf kinds. Masters are excluded;
// their slot tables are curated by hand in the master_*.go files.
var kind = map[string]string{
	"uinteger": "uint",
	"integer":  "int",
	"float":    "float",
	"string":   "ascii",
	"utf-8":    "utf8",
	"binary":   "bin",
	"date":     "date",
}

var regType = map[string]string{
	"master":   "Master",
	"uinteger": "Uint",
	"integer":  "Int",
	"float":    "Float",
	"string":   "String",
	"utf-8":    "Unicode",
	"binary":   "Binary",
	"date":     "Date",
}

func main() {
	schemaPath := flag.String("schema", "ebml_matroska.xml", "path to the Matroska schema XML")
	outDir := flag.String("out", ".", "output directory (the matroska package)")
	flag.Parse()

	raw, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatal(err)
	}
	var s schema
	if err := xml.Unmarshal(raw, &s); err != nil {
		log.Fatal(err)
	}

	var ids, leaves, regs bytes.Buffer
	header := "// Code generated by internal/gen from ebml_matroska.xml. DO NOT EDIT.\n\npackage matroska\n\nimport \"github.com/b01o/mkv-element/ebml\"\n"
	ids.WriteString(header)
	leaves.WriteString(header)
	regs.WriteString(header)

	ids.WriteString("\nconst (\n")
	regs.WriteString("\nvar elementRegisters = map[ebml.ID]ElementRegister{\n")

	for _, el := range s.Elements {
		name := rename(el.Name)
		ids.WriteString(fmt.Sprintf("\tID%s ebml.ID = %s\n", name, el.ID))
		rt, ok := regType[el.Type]
		if !ok {
			log.Fatalf("unknown element type %q for %s", el.Type, el.Name)
		}
		regs.WriteString(fmt.Sprintf("\tID%s: {ID%s, ElementType%s, %q},\n", name, name, rt, name))
		if k, ok := kind[el.Type]; ok {
			emitLeaf(&leaves, name, k)
		}
	}

	ids.WriteString(")\n")
	regs.WriteString("}\n")

	write(filepath.Join(*outDir, "ids.go"), ids.Bytes())
	write(filepath.Join(*outDir, "leaf.go"), leaves.Bytes())
	write(filepath.Join(*outDir, "registry.go"), regs.Bytes())
}

func rename(name string) string {
	if n, ok := goName[name]; ok {
		return n
	}
	// EBMLVersion-style names keep their initialisms; hyphens drop.
	return strings.ReplaceAll(name, "-", "")
}

func emitLeaf(w *bytes.Buffer, name, k string) {
	switch k {
	case "uint":
		fmt.Fprintf(w, `
// %[1]s is the Matroska %[1]s element, an unsigned integer.
type %[1]s uint64

func (%[1]s) ID() ebml.ID { return ID%[1]s }

func (e %[1]s) Len() int { return ebml.UintLen(uint64(e)) }

func (e %[1]s) Marshal(b []byte) int { return ebml.PutUint(b, uint64(e)) }

func (e *%[1]s) Unmarshal(b []byte, _ int) (int, error) {
	v, err := ebml.Uint(b)
	*e = %[1]s(v)
	return len(b), err
}
`, name)
	case "int":
		fmt.Fprintf(w, `
// %[1]s is the Matroska %[1]s element, a signed integer.
type %[1]s int64

func (%[1]s) ID() ebml.ID { return ID%[1]s }

func (e %[1]s) Len() int { return ebml.IntLen(int64(e)) }

func (e %[1]s) Marshal(b []byte) int { return ebml.PutInt(b, int64(e)) }

func (e *%[1]s) Unmarshal(b []byte, _ int) (int, error) {
	v, err := ebml.Int(b)
	*e = %[1]s(v)
	return len(b), err
}
`, name)
	case "float":
		fmt.Fprintf(w, `
// %[1]s is the Matroska %[1]s element, a float.
type %[1]s float64

func (%[1]s) ID() ebml.ID { return ID%[1]s }

func (e %[1]s) Len() int { return ebml.FloatLen(float64(e)) }

func (e %[1]s) Marshal(b []byte) int { return ebml.PutFloat(b, float64(e)) }

func (e *%[1]s) Unmarshal(b []byte, _ int) (int, error) {
	v, err := ebml.Float(b)
	*e = %[1]s(v)
	return len(b), err
}
`, name)
	case "ascii", "utf8":
		decode := "ebml.String"
		label := "an ASCII string"
		if k == "utf8" {
			decode = "ebml.UTF8String"
			label = "a UTF-8 string"
		}
		fmt.Fprintf(w, `
// %[1]s is the Matroska %[1]s element, %[3]s.
type %[1]s string

func (%[1]s) ID() ebml.ID { return ID%[1]s }

func (e %[1]s) Len() int { return len(e) }

func (e %[1]s) Marshal(b []byte) int { return copy(b, e) }

func (e *%[1]s) Unmarshal(b []byte, _ int) (int, error) {
	s, err := %[2]s(b)
	*e = %[1]s(s)
	return len(b), err
}
`, name, decode, label)
	case "bin":
		fmt.Fprintf(w, `
// %[1]s is the Matroska %[1]s element, binary data.
type %[1]s []byte

func (%[1]s) ID() ebml.ID { return ID%[1]s }

func (e %[1]s) Len() int { return len(e) }

func (e %[1]s) Marshal(b []byte) int { return copy(b, e) }

func (e *%[1]s) Unmarshal(b []byte, _ int) (int, error) {
	*e = append(%[1]s(nil), b...)
	return len(b), nil
}
`, name)
	case "date":
		fmt.Fprintf(w, `
// %[1]s is the Matroska %[1]s element, a date: nanoseconds since
// 2001-01-01T00:00:00 UTC, stored as a signed 8-byte integer.
type %[1]s int64

func (%[1]s) ID() ebml.ID { return ID%[1]s }

func (e %[1]s) Len() int { return 8 }

func (e %[1]s) Marshal(b []byte) int { return ebml.PutDate(b, int64(e)) }

func (e *%[1]s) Unmarshal(b []byte, _ int) (int, error) {
	v, err := ebml.Date(b)
	*e = %[1]s(v)
	return len(b), err
}
`, name)
	}
}

func write(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", path)
}
