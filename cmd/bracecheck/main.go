package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/weaming/colormatrix/braces"
)

var errUnbalanced = errors.New("花括号不平衡")

func run(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("用法: bracecheck <文件>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := braces.Check(f)
	if err != nil {
		return fmt.Errorf("读取 %s 失败: %w", args[0], err)
	}

	if res.NegativeLine > 0 {
		fmt.Fprintf(stdout, "Error: Negative balance at line %d\n", res.NegativeLine)
	}
	if res.Balance != 0 {
		fmt.Fprintf(stdout, "Final balance: %d\n", res.Balance)
		return errUnbalanced
	}
	fmt.Fprintln(stdout, "Braces are balanced.")
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUnbalanced) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}
