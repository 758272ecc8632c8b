package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/weaming/colormatrix/matrix"
)

type Config struct {
	Output    string // 输出文件路径，空表示标准输出
	Format    string
	Precision int
	Verbose   bool
	Basis     string // 色适应基
	From      string // 源空间或源白点
	To        string // 目标空间或目标白点
	Space     string
	White     string
	RGB       string // 可选的待转换线性 RGB 值 "r,g,b"
	ASTM      bool   // D50/D65 使用 ASTM 三刺激值
}

// NamedMatrix 带名称和注释的矩阵，格式化输出的单位
type NamedMatrix struct {
	Name    string
	Comment string
	M       matrix.Matrix3x3
}

// Export 按 config 将矩阵写入文件或 w
func Export(config Config, w io.Writer, mats []NamedMatrix) error {
	format, err := ParseFormat(config.Format)
	if err != nil {
		return err
	}

	if config.Output == "" {
		return WriteMatrices(w, format, mats, config.Precision)
	}

	f, err := os.Create(config.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteMatrices(f, format, mats, config.Precision); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", config.Output, err)
	}
	return f.Close()
}

// formatFloat 定点格式化，去掉 "-0.000000" 的负号
func formatFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

// ParseVector 解析 "r,g,b" 形式的三元组
func ParseVector(s string) (matrix.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return matrix.Vector3{}, fmt.Errorf("需要 3 个分量: %q", s)
	}
	var v matrix.Vector3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return matrix.Vector3{}, fmt.Errorf("分量 %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}
