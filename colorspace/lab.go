package colorspace

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToLab8 将 8-bit sRGB 像素转换为 8-bit 编码的 Lab
// 输出: L*·255/100, a*+128, b*+128，均已取整并限制到 [0, 255]
func RGBToLab8(rgb [3]uint8) Vector3 {
	linear := RemoveSRGBGamma(ConvertFromUint8(rgb))
	xyz := SRGBToXYZ.Apply(linear)

	// go-colorful 的 Lab 以 L/100、a/100、b/100 表示
	l, a, b := colorful.XyzToLabWhiteRef(xyz[0], xyz[1], xyz[2], D65WhitePoint)

	return Vector3{
		Saturate8(l * 100 * LabLightnessScale),
		Saturate8(a*100 + LabChromaOffset),
		Saturate8(b*100 + LabChromaOffset),
	}
}

// Lab8ToRGB 将 8-bit 编码的 Lab 转换回 8-bit sRGB
// 超出 sRGB 色域的值被饱和
func Lab8ToRGB(lab Vector3) [3]uint8 {
	l := lab[0] / LabLightnessScale / 100
	a := (lab[1] - LabChromaOffset) / 100
	b := (lab[2] - LabChromaOffset) / 100

	x, y, z := colorful.LabToXyzWhiteRef(l, a, b, D65WhitePoint)
	linear := XYZToSRGB.Apply(Vector3{x, y, z}).Clamp(0, 1)

	return ConvertToUint8(ApplySRGBGamma(linear))
}
