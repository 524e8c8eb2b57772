package colorspace

import "math"

// SRGBGamma sRGB gamma 曲线（精确版本）
func SRGBGamma(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}

// SRGBInverseGamma sRGB 逆 gamma 曲线
func SRGBInverseGamma(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// ApplySRGBGamma 对 RGB 向量应用 sRGB gamma 曲线
func ApplySRGBGamma(rgb Vector3) Vector3 {
	return Vector3{
		SRGBGamma(rgb[0]),
		SRGBGamma(rgb[1]),
		SRGBGamma(rgb[2]),
	}
}

// RemoveSRGBGamma 对 RGB 向量应用 sRGB 逆 gamma 曲线（线性化）
func RemoveSRGBGamma(rgb Vector3) Vector3 {
	return Vector3{
		SRGBInverseGamma(rgb[0]),
		SRGBInverseGamma(rgb[1]),
		SRGBInverseGamma(rgb[2]),
	}
}

// Saturate8 四舍六入五成双并限制到 [0, 255]
func Saturate8(v float64) float64 {
	v = math.RoundToEven(v)
	if v < 0 {
		return 0
	}
	if v > MaxSample {
		return MaxSample
	}
	return v
}

// ConvertToUint8 将浮点 RGB [0,1] 转换为 8-bit 整数
func ConvertToUint8(rgb Vector3) [3]uint8 {
	return [3]uint8{
		uint8(Saturate8(rgb[0] * MaxSample)),
		uint8(Saturate8(rgb[1] * MaxSample)),
		uint8(Saturate8(rgb[2] * MaxSample)),
	}
}

// ConvertFromUint8 将 8-bit 整数转换为浮点 RGB [0,1]
func ConvertFromUint8(rgb [3]uint8) Vector3 {
	return Vector3{
		float64(rgb[0]) / MaxSample,
		float64(rgb[1]) / MaxSample,
		float64(rgb[2]) / MaxSample,
	}
}
