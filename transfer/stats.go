package transfer

import (
	"fmt"
	"math"

	"github.com/weaming/color-transfer-go/colorspace"
)

// ChannelStats 每个 Lab 通道的均值和（总体）标准差
type ChannelStats struct {
	Mean [3]float64
	Std  [3]float64
}

// Values 按 (lMean, lStd, aMean, aStd, bMean, bStd) 顺序返回
func (s ChannelStats) Values() [6]float64 {
	return [6]float64{
		s.Mean[0], s.Std[0],
		s.Mean[1], s.Std[1],
		s.Mean[2], s.Std[2],
	}
}

func (s ChannelStats) String() string {
	return fmt.Sprintf("L=%.2f±%.2f a=%.2f±%.2f b=%.2f±%.2f",
		s.Mean[0], s.Std[0], s.Mean[1], s.Std[1], s.Mean[2], s.Std[2])
}

// ComputeStats 计算 Lab 图像每个通道的均值和标准差
// 标准差的除数为像素数（总体标准差）。空图像的结果为 NaN
func ComputeStats(img *colorspace.LabImage) ChannelStats {
	var result ChannelStats
	count := float64(img.Width * img.Height)
	n := img.Width * img.Height

	// 第一遍：计算均值
	var sum [3]float64
	for i := 0; i < n; i++ {
		sum[0] += img.Pix[i*3]
		sum[1] += img.Pix[i*3+1]
		sum[2] += img.Pix[i*3+2]
	}
	for c := 0; c < 3; c++ {
		result.Mean[c] = sum[c] / count
	}

	// 第二遍：计算标准差
	var sqdevSum [3]float64
	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			diff := img.Pix[i*3+c] - result.Mean[c]
			sqdevSum[c] += diff * diff
		}
	}
	for c := 0; c < 3; c++ {
		result.Std[c] = math.Sqrt(sqdevSum[c] / count)
	}

	return result
}

// Stats 将 RGB 图像转换到 Lab 后计算通道统计
func Stats(img *colorspace.RGBImage) (ChannelStats, error) {
	if err := img.Validate(); err != nil {
		return ChannelStats{}, err
	}
	return ComputeStats(colorspace.ToLab(img)), nil
}
