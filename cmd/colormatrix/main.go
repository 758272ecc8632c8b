package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/weaming/colormatrix/colorspace"
	"github.com/weaming/colormatrix/output"
)

const version = "0.1.0"

var errUsage = errors.New("用法错误")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "colormatrix version %s\n", version)
	fmt.Fprintf(w, "\n推导并输出 3x3 色彩转换矩阵\n\n")
	fmt.Fprintf(w, "用法: colormatrix <命令> [选项]\n\n")
	fmt.Fprintf(w, "命令:\n")
	fmt.Fprintf(w, "  adapt    白点色适应矩阵 (-from D50 -to D65)\n")
	fmt.Fprintf(w, "  rgb2xyz  线性 RGB → XYZ (-space sRGB)\n")
	fmt.Fprintf(w, "  xyz2rgb  XYZ → 线性 RGB (-space ProPhotoRGB [-white D50])\n")
	fmt.Fprintf(w, "  convert  RGB 空间之间的转换 (-from ProPhotoRGB -to Rec2020 [-rgb r,g,b])\n")
	fmt.Fprintf(w, "  header   生成管线使用的全部矩阵（C 头文件）\n")
	fmt.Fprintf(w, "\n色彩空间: %s\n", strings.Join(colorspace.Spaces(), ", "))
	fmt.Fprintf(w, "输出格式: text, c, go, markdown, html\n")
	fmt.Fprintf(w, "\n示例:\n")
	fmt.Fprintf(w, "  colormatrix adapt -from D50 -to D65 -basis bradford\n")
	fmt.Fprintf(w, "  colormatrix xyz2rgb -space sRGB -white D50 -astm -p 7\n")
	fmt.Fprintf(w, "  colormatrix header -o ColorMatrices.h\n")
}

func newFlagSet(name string, stderr io.Writer, config *output.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&config.Output, "o", "", "输出文件路径（默认标准输出）")
	fs.StringVar(&config.Format, "f", "text", "输出格式: text, c, go, markdown, html")
	fs.IntVar(&config.Precision, "p", 6, "小数位数")
	fs.BoolVar(&config.Verbose, "v", false, "详细输出")
	fs.StringVar(&config.Basis, "basis", "Bradford", "色适应基: Bradford, VonKries, XYZScaling, CAT02")
	fs.BoolVar(&config.ASTM, "astm", false, "D50/D65 使用 ASTM E308 三刺激值（默认由色度坐标推导）")
	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	config := &output.Config{}
	fs := newFlagSet(args[0], stderr, config)

	var cmd func(*output.Config) ([]output.NamedMatrix, error)
	switch args[0] {
	case "adapt":
		fs.StringVar(&config.From, "from", "D50", "源白点")
		fs.StringVar(&config.To, "to", "D65", "目标白点")
		cmd = adaptCmd
	case "rgb2xyz":
		fs.StringVar(&config.Space, "space", "sRGB", "RGB 色彩空间")
		cmd = rgbToXYZCmd
	case "xyz2rgb":
		fs.StringVar(&config.Space, "space", "sRGB", "RGB 色彩空间")
		fs.StringVar(&config.White, "white", "", "输入 XYZ 的白点（默认与色彩空间相同）")
		cmd = xyzToRGBCmd
	case "convert":
		fs.StringVar(&config.From, "from", "ProPhotoRGB", "源 RGB 色彩空间")
		fs.StringVar(&config.To, "to", "sRGB", "目标 RGB 色彩空间")
		fs.StringVar(&config.RGB, "rgb", "", "可选：转换一个线性 RGB 值 r,g,b")
		cmd = convertCmd
	case "header":
		config.Format = "c"
		fs.Lookup("f").DefValue = "c"
		cmd = headerCmd
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("未知命令: %s", args[0])
	}

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("多余的参数: %s", strings.Join(fs.Args(), " "))
	}

	logger := output.NewLogger(stderr, config.Verbose)
	logger.Info("命令: %s, 色适应基: %s, 格式: %s", args[0], config.Basis, config.Format)

	mats, err := cmd(config)
	if err != nil {
		return err
	}
	for _, m := range mats {
		output.Debug("%s det=%g", m.Name, m.M.Determinant())
	}

	if config.RGB != "" {
		if err := convertSample(stdout, config); err != nil {
			return err
		}
	}

	if config.Output != "" {
		logger.Step("写入", config.Output)
	}
	if err := output.Export(*config, stdout, mats); err != nil {
		return err
	}
	if config.Output != "" {
		logger.Done(fmt.Sprintf("%d 个矩阵", len(mats)))
		if config.Verbose {
			logger.Total()
		}
	}
	return nil
}
