package output

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat 不支持的输出格式
var ErrUnknownFormat = errors.New("output: unknown format")

// Format 矩阵输出格式
type Format string

const (
	FormatText     Format = "text"
	FormatC        Format = "c"
	FormatGo       Format = "go"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// HeaderGuard C 头文件的 include guard
const HeaderGuard = "COLOR_MATRICES_H"

// ParseFormat 解析格式名，空字符串视为 text
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "c", "h", "header":
		return FormatC, nil
	case "go", "golang":
		return FormatGo, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// WriteMatrices 按指定格式和小数位数输出矩阵
func WriteMatrices(w io.Writer, format Format, mats []NamedMatrix, precision int) error {
	if precision < 0 {
		precision = 6
	}

	switch format {
	case FormatHTML:
		var md bytes.Buffer
		writeMarkdown(&md, mats, precision)
		return renderHTML(w, md.Bytes())
	case FormatText, FormatC, FormatGo, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	bw := bufio.NewWriter(w)
	switch format {
	case FormatText:
		writeText(bw, mats, precision)
	case FormatC:
		writeC(bw, mats, precision)
	case FormatGo:
		writeGo(bw, mats, precision)
	case FormatMarkdown:
		writeMarkdown(bw, mats, precision)
	}
	return bw.Flush()
}

// row 以 sep 连接一行三个元素，每个元素加 suffix
func row(nm NamedMatrix, i, precision int, sep, suffix string) string {
	cells := make([]string, 3)
	for j := 0; j < 3; j++ {
		cells[j] = formatFloat(nm.M.At(i, j), precision) + suffix
	}
	return strings.Join(cells, sep)
}

func writeText(w io.Writer, mats []NamedMatrix, precision int) {
	for _, nm := range mats {
		fmt.Fprintf(w, "%s:\n", nm.Name)
		for i := 0; i < 3; i++ {
			fmt.Fprintf(w, "  [%s]\n", row(nm, i, precision, ", ", ""))
		}
		fmt.Fprintln(w)
	}
}

func writeC(w io.Writer, mats []NamedMatrix, precision int) {
	fmt.Fprintf(w, "#ifndef %s\n#define %s\n\n", HeaderGuard, HeaderGuard)
	fmt.Fprintf(w, "// Matrix 3x3\nstruct Mat3x3 {\n    float m[3][3];\n};\n")
	for _, nm := range mats {
		fmt.Fprintln(w)
		writeComment(w, "// ", nm.Comment)
		fmt.Fprintf(w, "static const Mat3x3 %s = {{\n", nm.Name)
		for i := 0; i < 3; i++ {
			sep := ","
			if i == 2 {
				sep = ""
			}
			fmt.Fprintf(w, "    {%s}%s\n", row(nm, i, precision, ", ", "f"), sep)
		}
		fmt.Fprintf(w, "}};\n")
	}
	fmt.Fprintf(w, "\n#endif // %s\n", HeaderGuard)
}

func writeGo(w io.Writer, mats []NamedMatrix, precision int) {
	for i, nm := range mats {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeComment(w, "// ", nm.Comment)
		fmt.Fprintf(w, "var %s = matrix.Matrix3x3{\n", nm.Name)
		for r := 0; r < 3; r++ {
			fmt.Fprintf(w, "\t%s,\n", row(nm, r, precision, ", ", ""))
		}
		fmt.Fprintf(w, "}\n")
	}
}

func writeMarkdown(w io.Writer, mats []NamedMatrix, precision int) {
	for i, nm := range mats {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "### %s\n\n", nm.Name)
		if nm.Comment != "" {
			fmt.Fprintf(w, "%s\n\n", nm.Comment)
		}
		fmt.Fprintf(w, "| row | col 0 | col 1 | col 2 |\n")
		fmt.Fprintf(w, "|---|---:|---:|---:|\n")
		for r := 0; r < 3; r++ {
			fmt.Fprintf(w, "| %d | %s |\n", r, row(nm, r, precision, " | ", ""))
		}
	}
}

func writeComment(w io.Writer, prefix, comment string) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(comment, "\n") {
		fmt.Fprintln(w, strings.TrimRight(prefix+line, " "))
	}
}
