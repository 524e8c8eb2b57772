package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/weaming/color-transfer-go/colorspace"
	"github.com/weaming/color-transfer-go/imageio"
	"github.com/weaming/color-transfer-go/transfer"
)

// Result 一次运行的中间结果
type Result struct {
	Source *colorspace.RGBImage
	Target *colorspace.RGBImage
	Output *colorspace.RGBImage
}

// Run 读取输入、执行色彩迁移并写出结果
func Run(ctx context.Context, config Config, logger *Logger) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewLoggerTo(nil)
	}

	// 步骤 1: 并发读取两幅图像
	logger.Step("读取图像", fmt.Sprintf("%s, %s", filepath.Base(config.Source), filepath.Base(config.Target)))
	source, target, err := loadPair(ctx, config.Source, config.Target)
	if err != nil {
		return nil, err
	}
	logger.Done(fmt.Sprintf("源=%dx%d 目标=%dx%d", source.Width, source.Height, target.Width, target.Height))

	opts := transfer.Options{InverseScale: config.InverseScale}
	logger.Debug("Run: options=%+v", opts)

	if config.ShowStats {
		reportStats(logger, "源", source)
		reportStats(logger, "目标", target)
	}

	// 步骤 2: 色彩迁移
	logger.Step("色彩迁移")
	output, err := transfer.Transfer(source, target, opts)
	if err != nil {
		return nil, fmt.Errorf("色彩迁移失败: %w", err)
	}
	logger.Done(fmt.Sprintf("%dx%d", output.Width, output.Height))

	if config.ShowStats {
		reportStats(logger, "结果", output)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saveOpts := imageio.SaveOptions{Quality: config.Quality, ASCII: config.PlainPPM}

	// 步骤 3: 写出结果
	if config.Output != "" {
		logger.Step("写入结果", filepath.Base(config.Output))
		if err := imageio.Save(output, config.Output, saveOpts); err != nil {
			return nil, fmt.Errorf("无法写入 %s: %w", config.Output, err)
		}
		logger.Done("完成")
	}

	// 步骤 4: 预览图
	if config.Preview != "" {
		height := config.PreviewHeight
		if height <= 0 {
			height = imageio.DefaultPreviewHeight
		}
		logger.Step("生成预览", fmt.Sprintf("高度=%d", height))
		preview := imageio.Preview(height, source, target, output)
		if err := imageio.Save(preview, config.Preview, saveOpts); err != nil {
			return nil, fmt.Errorf("无法写入预览 %s: %w", config.Preview, err)
		}
		logger.Done(fmt.Sprintf("%dx%d", preview.Width, preview.Height))
	}

	if config.Verbose {
		logger.Total()
	}

	return &Result{Source: source, Target: target, Output: output}, nil
}

func loadPair(ctx context.Context, sourcePath, targetPath string) (*colorspace.RGBImage, *colorspace.RGBImage, error) {
	var source, target *colorspace.RGBImage

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		img, err := imageio.Load(sourcePath)
		if err != nil {
			return fmt.Errorf("无法读取源图像: %w", err)
		}
		source = img
		return ctx.Err()
	})
	g.Go(func() error {
		img, err := imageio.Load(targetPath)
		if err != nil {
			return fmt.Errorf("无法读取目标图像: %w", err)
		}
		target = img
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

func reportStats(logger *Logger, name string, img *colorspace.RGBImage) {
	stats, err := transfer.Stats(img)
	if err != nil {
		logger.Warn("%s统计失败: %v", name, err)
		return
	}
	logger.Info("%s: %s", name, stats)
}
