package output

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderHTML 用 goldmark 将 markdown 报告转为 HTML 片段
func renderHTML(w io.Writer, markdown []byte) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert(markdown, w); err != nil {
		return fmt.Errorf("渲染 HTML 失败: %w", err)
	}
	return nil
}
