// Package braces 统计源文件中花括号的配对情况
package braces

import (
	"bufio"
	"io"
)

// Result 检查结果
type Result struct {
	Balance      int // 扫描结束时 '{' 与 '}' 的差值
	Lines        int // 已扫描的行数
	NegativeLine int // 首次出现负平衡的行号（从 1 开始），0 表示未出现
}

// Balanced 扫描完整且平衡
func (r Result) Balanced() bool {
	return r.Balance == 0 && r.NegativeLine == 0
}

// Check 逐行统计 '{' 和 '}'，平衡值变为负数时停止扫描
func Check(r io.Reader) (Result, error) {
	var res Result

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			res.Lines++
			for i := 0; i < len(line); i++ {
				switch line[i] {
				case '{':
					res.Balance++
				case '}':
					res.Balance--
				}
			}
			if res.Balance < 0 {
				res.NegativeLine = res.Lines
				return res, nil
			}
		}
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
	}
}
