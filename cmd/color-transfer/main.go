package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weaming/color-transfer-go/imageio"
	"github.com/weaming/color-transfer-go/pipeline"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := &pipeline.Config{}

	cmd := &cobra.Command{
		Use:     "color-transfer --source <源图像> --target <目标图像> [-o 输出]",
		Short:   "将源图像的色彩分布迁移到目标图像",
		Version: pipeline.Version,
		Long: `在 Lab 色彩空间中按通道匹配均值和标准差，
使目标图像具有源图像的色调。

支持的输入格式: PNG, JPEG, GIF, BMP, TIFF, WebP, PPM
支持的输出格式: .png .jpg .bmp .tiff .ppm`,
		Example: `  color-transfer --source sunset.jpg --target ocean.jpg -o ocean_sunset.png
  color-transfer --source a.png --target b.png --preview side.jpg --stats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pipeline.NewLoggerTo(cmd.OutOrStdout())
			_, err := pipeline.Run(cmd.Context(), *config, logger)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Source, "source", "", "源图像路径 (必需)")
	flags.StringVar(&config.Target, "target", "", "目标图像路径 (必需)")
	flags.StringVarP(&config.Output, "output", "o", "", "结果输出路径")
	flags.StringVar(&config.Preview, "preview", "", "源/目标/结果并排预览图路径")
	flags.IntVar(&config.PreviewHeight, "preview-height", imageio.DefaultPreviewHeight, "预览图高度")
	flags.IntVar(&config.Quality, "quality", 95, "JPEG 质量 (1-100)")
	flags.BoolVar(&config.InverseScale, "inverse-scale", false, "使用 targetStd/sourceStd 作为缩放系数")
	flags.BoolVar(&config.ShowStats, "stats", false, "输出各图像的 Lab 通道统计")
	flags.BoolVar(&config.PlainPPM, "plain-ppm", false, ".ppm 输出使用 P3 文本格式")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "详细输出")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
